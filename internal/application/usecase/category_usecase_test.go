package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/application/usecase"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	"github.com/jhoicas/retail-backoffice/internal/domain/entity"
)

// fakeCategoryRepo repositorio en memoria para el árbol de categorías.
type fakeCategoryRepo struct {
	nextID     int64
	categories map[int64]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1, categories: map[int64]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(cat *entity.Category) error {
	cat.ID = r.nextID
	r.nextID++
	cp := *cat
	r.categories[cat.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *cat
	return &cp, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, cat := range r.categories {
		cp := *cat
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(cat *entity.Category) error {
	cp := *cat
	r.categories[cat.ID] = &cp
	return nil
}

// mustCreate crea una categoría o aborta el test.
func mustCreate(t *testing.T, uc *usecase.CategoryUseCase, name string, parentID *int64) *entity.Category {
	t.Helper()
	cat, err := uc.Create(dto.CreateCategoryRequest{Name: name, ParentID: parentID})
	require.NoError(t, err)
	return cat
}

func TestCategoryCreate_PadreInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	parentID := int64(99)
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Laptops", ParentID: &parentID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_CambiaNombreYPadre(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	root := mustCreate(t, uc, "Electronics", nil)
	child := mustCreate(t, uc, "Laptop", nil)

	newName := "Laptops"
	updated, err := uc.Update(child.ID, dto.UpdateCategoryRequest{Name: &newName, ParentID: &root.ID})
	require.NoError(t, err)

	assert.Equal(t, "Laptops", updated.Name)
	require.NotNil(t, updated.ParentID)
	assert.Equal(t, root.ID, *updated.ParentID)
}

// Una categoría no puede ser su propio padre.
func TestCategoryUpdate_AutoPadreRechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	cat := mustCreate(t, uc, "Electronics", nil)

	_, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{ParentID: &cat.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

// Colgar una categoría de uno de sus descendientes crearía un ciclo:
// Electronics → Laptops → Gaming; Electronics.parent = Gaming se rechaza.
func TestCategoryUpdate_CicloPorDescendienteRechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	root := mustCreate(t, uc, "Electronics", nil)
	mid := mustCreate(t, uc, "Laptops", &root.ID)
	leaf := mustCreate(t, uc, "Gaming", &mid.ID)

	_, err := uc.Update(root.ID, dto.UpdateCategoryRequest{ParentID: &leaf.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)

	// El árbol queda intacto
	cat, err := uc.GetByID(root.ID)
	require.NoError(t, err)
	assert.Nil(t, cat.ParentID)
}

// Mover una rama a otro padre válido no dispara la detección de ciclos.
func TestCategoryUpdate_MoverRamaValida(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	root := mustCreate(t, uc, "Electronics", nil)
	other := mustCreate(t, uc, "Home & Kitchen", nil)
	child := mustCreate(t, uc, "Small Appliances", &root.ID)

	updated, err := uc.Update(child.ID, dto.UpdateCategoryRequest{ParentID: &other.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.ParentID)
	assert.Equal(t, other.ID, *updated.ParentID)
}
