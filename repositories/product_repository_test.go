package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"solestyle/models"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepoMock(t *testing.T) (*ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return NewProductRepository(mockDB), mockDB
}

func TestProductRepository_Create(t *testing.T) {
	repo, mockDB := newProductRepoMock(t)

	now := time.Now()
	mockDB.ExpectQuery("INSERT INTO products").
		WithArgs("Runner", "SoleStyle", 99.90, "https://img.example/shoe.png", "running").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	product := &models.Product{
		Name:     "Runner",
		Brand:    "SoleStyle",
		Price:    99.90,
		Image:    "https://img.example/shoe.png",
		Category: "running",
	}
	err := repo.Create(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t, 7, product.ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestProductRepository_FindAll(t *testing.T) {
	repo, mockDB := newProductRepoMock(t)

	now := time.Now()
	mockDB.ExpectQuery("SELECT id, name, brand, price").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "brand", "price", "image", "category", "created_at"}).
			AddRow(2, "Trail", "SoleStyle", 129.00, "", "hiking", now).
			AddRow(1, "Runner", "SoleStyle", 99.90, "", "running", now))

	products, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Trail", products[0].Name)
	assert.Equal(t, "Runner", products[1].Name)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestProductRepository_FindAll_Empty(t *testing.T) {
	repo, mockDB := newProductRepoMock(t)

	mockDB.ExpectQuery("SELECT id, name, brand, price").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "brand", "price", "image", "category", "created_at"}))

	products, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_FindAll_QueryError(t *testing.T) {
	repo, mockDB := newProductRepoMock(t)

	mockDB.ExpectQuery("SELECT id, name, brand, price").
		WillReturnError(errors.New("connection reset"))

	products, err := repo.FindAll(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}
