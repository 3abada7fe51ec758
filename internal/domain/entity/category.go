package entity

import "time"

// Category representa una categoría de productos. El árbol es autorreferencial:
// ParentID nil indica una categoría raíz. Los ciclos se rechazan en escritura.
type Category struct {
	ID        int64
	Name      string
	ParentID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
