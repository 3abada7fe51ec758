package usecase

import (
	"time"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

// Cota de profundidad al recorrer ancestros; un árbol real de categorías de
// retail nunca se acerca a esto y la cota corta cualquier ciclo preexistente.
const maxCategoryDepth = 100

// CategoryUseCase lógica de aplicación para el árbol de categorías.
// Los ciclos se rechazan en escritura: una categoría no puede colgar de uno de
// sus propios descendientes.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría; el padre, si viene, debe existir. Una categoría
// nueva no puede introducir ciclos (su id aún no es ancestro de nadie).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	cat := &entity.Category{
		Name:      in.Name,
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// GetByID devuelve una categoría.
func (uc *CategoryUseCase) GetByID(id int64) (*entity.Category, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return cat, nil
}

// List devuelve las categorías paginadas.
func (uc *CategoryUseCase) List(limit, offset int) ([]*entity.Category, error) {
	return uc.repo.List(limit, offset)
}

// Update cambia nombre y/o padre. Antes de aceptar un padre nuevo recorre su
// cadena de ancestros: si aparece la propia categoría hay ciclo y se rechaza.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		cat.Name = *in.Name
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, domain.ErrCategoryCycle
		}
		if err := uc.checkNoCycle(id, *in.ParentID); err != nil {
			return nil, err
		}
		cat.ParentID = in.ParentID
	}
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// checkNoCycle sube por los ancestros de parentID; encontrarse con id
// significaría que el padre propuesto es descendiente de la categoría.
func (uc *CategoryUseCase) checkNoCycle(id, parentID int64) error {
	current := parentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		node, err := uc.repo.GetByID(current)
		if err != nil {
			return err
		}
		if node == nil {
			return domain.ErrNotFound
		}
		if node.ParentID == nil {
			return nil
		}
		if *node.ParentID == id {
			return domain.ErrCategoryCycle
		}
		current = *node.ParentID
	}
	return domain.ErrCategoryCycle
}
