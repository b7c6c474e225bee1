package usecase_test

import (
	"context"
	"testing"

	"mall/internal/domain/model"
	repo "mall/internal/repository"
	"mall/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type itemFixture struct {
	items  *itemRepoMock
	images *imageRepoMock
	uc     *usecase.ItemUsecase
}

func newItemFixture() *itemFixture {
	items := new(itemRepoMock)
	images := new(imageRepoMock)

	tx := &txManagerStub{repos: &txReposStub{
		members: new(memberRepoMock),
		items:   items,
		images:  images,
		orders:  new(orderRepoMock),
	}}

	return &itemFixture{
		items:  items,
		images: images,
		uc:     usecase.NewItemUsecase(tx, items, images, zap.NewNop()),
	}
}

func TestItemUsecase_Register_NameRequired(t *testing.T) {
	f := newItemFixture()

	_, err := f.uc.Register(context.Background(), usecase.ItemInput{
		Name: "  ", Price: 1000, Stock: 10, ImageURLs: []string{"/images/a.jpg"},
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestItemUsecase_Register_PriceMustBePositive(t *testing.T) {
	f := newItemFixture()

	_, err := f.uc.Register(context.Background(), usecase.ItemInput{
		Name: "コーヒー豆", Price: 0, Stock: 10, ImageURLs: []string{"/images/a.jpg"},
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestItemUsecase_Register_ImageRequired(t *testing.T) {
	f := newItemFixture()

	_, err := f.uc.Register(context.Background(), usecase.ItemInput{
		Name: "コーヒー豆", Price: 1000, Stock: 10,
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

// 先頭画像だけが代表になり、orderingは入力順
func TestItemUsecase_Register_FirstImageIsRepresentative(t *testing.T) {
	f := newItemFixture()

	f.items.On("Create", mock.Anything,
		mock.MatchedBy(func(it model.Item) bool {
			return it.Name == "コーヒー豆" && it.Price == 1000 &&
				it.Stock == 10 && it.SellStatus == model.SellStatusSell
		})).
		Return(model.Item{ID: 5, Name: "コーヒー豆", Price: 1000, Stock: 10}, nil)

	f.images.On("CreateAll", mock.Anything, int64(5),
		mock.MatchedBy(func(images []model.ItemImage) bool {
			if len(images) != 2 {
				return false
			}
			return images[0].RepImage && images[0].Ordering == 0 &&
				!images[1].RepImage && images[1].Ordering == 1
		})).
		Return(nil)

	id, err := f.uc.Register(context.Background(), usecase.ItemInput{
		Name:      "コーヒー豆",
		Price:     1000,
		Stock:     10,
		ImageURLs: []string{"/images/a.jpg", "/images/b.jpg"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	f.images.AssertExpectations(t)
}

// 在庫0で登録するとSOLD_OUTになる
func TestItemUsecase_Register_ZeroStockIsSoldOut(t *testing.T) {
	f := newItemFixture()

	f.items.On("Create", mock.Anything, mock.MatchedBy(func(it model.Item) bool {
		return it.SellStatus == model.SellStatusSoldOut
	})).Return(model.Item{ID: 6}, nil)
	f.images.On("CreateAll", mock.Anything, int64(6), mock.Anything).Return(nil)

	_, err := f.uc.Register(context.Background(), usecase.ItemInput{
		Name: "売切れ商品", Price: 500, Stock: 0, ImageURLs: []string{"/images/c.jpg"},
	})
	assert.NoError(t, err)
	f.items.AssertExpectations(t)
}

func TestItemUsecase_Update_NotFound(t *testing.T) {
	f := newItemFixture()

	f.items.On("FindByID", mock.Anything, int64(99)).
		Return(model.Item{}, repo.ErrNotFound)

	err := f.uc.Update(context.Background(), 99, usecase.ItemInput{
		Name: "コーヒー豆", Price: 1000, Stock: 10,
	})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

// 画像URLなしの修正は画像リストを触らない
func TestItemUsecase_Update_KeepsImagesWhenNoURLs(t *testing.T) {
	f := newItemFixture()

	f.items.On("FindByID", mock.Anything, int64(5)).
		Return(model.Item{ID: 5}, nil)
	f.items.On("Update", mock.Anything, mock.MatchedBy(func(it model.Item) bool {
		return it.ID == 5 && it.Price == 1500
	})).Return(nil)

	err := f.uc.Update(context.Background(), 5, usecase.ItemInput{
		Name: "コーヒー豆", Price: 1500, Stock: 3,
	})

	assert.NoError(t, err)
	f.images.AssertNotCalled(t, "DeleteByItemID", mock.Anything, mock.Anything)
	f.images.AssertNotCalled(t, "CreateAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestItemUsecase_Detail_NotFound(t *testing.T) {
	f := newItemFixture()

	f.items.On("FindByID", mock.Anything, int64(99)).
		Return(model.Item{}, repo.ErrNotFound)

	_, err := f.uc.Detail(context.Background(), 99)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestItemUsecase_Search_InvalidSort(t *testing.T) {
	f := newItemFixture()

	_, err := f.uc.Search(context.Background(), usecase.ItemSearchInput{
		Page: 1, Limit: 5, Sort: "random",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

// 管理画面の既定は1ページ5件
func TestItemUsecase_Search_DefaultsToFivePerPage(t *testing.T) {
	f := newItemFixture()

	f.items.On("Search", mock.Anything, repo.ItemSearchQuery{
		Page: 1, Limit: 5, Q: "コーヒー",
	}).Return([]model.Item{{ID: 1}}, int64(1), nil)

	out, err := f.uc.Search(context.Background(), usecase.ItemSearchInput{
		Q: "コーヒー",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, out.Limit)
	assert.Equal(t, int64(1), out.Total)
	f.items.AssertExpectations(t)
}
