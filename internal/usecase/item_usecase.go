package usecase

import (
	"context"
	"errors"
	"strings"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"go.uber.org/zap"
)

// 商品登録・修正の入力。画像はURLで受け取る（アップロードは境界側の仕事）。
type ItemInput struct {
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Detail     string   `json:"detail"`
	Stock      int64    `json:"stock"`
	SellStatus string   `json:"sell_status"`
	ImageURLs  []string `json:"image_urls"`
}

type ItemDetailOutput struct {
	Item   model.Item        `json:"item"`
	Images []model.ItemImage `json:"images"`
}

type ItemSearchInput struct {
	Page       int
	Limit      int
	Q          string
	SellStatus string
	Sort       string
}

type ItemPageOutput struct {
	Items []model.Item `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type ItemUsecase struct {
	tx     repo.TransactionManager
	items  repo.ItemRepository
	images repo.ItemImageRepository
	logger *zap.Logger
}

func NewItemUsecase(
	tx repo.TransactionManager,
	items repo.ItemRepository,
	images repo.ItemImageRepository,
	logger *zap.Logger,
) *ItemUsecase {
	return &ItemUsecase{tx: tx, items: items, images: images, logger: logger}
}

func validateItemInput(in ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if in.Price <= 0 {
		return ErrInvalidInput
	}
	if in.Stock < 0 {
		return ErrInvalidInput
	}
	switch model.SellStatus(in.SellStatus) {
	case "", model.SellStatusSell, model.SellStatusSoldOut:
	default:
		return ErrInvalidInput
	}
	return nil
}

// 入力にsell_statusが無ければ在庫から決める
func resolveSellStatus(in ItemInput) model.SellStatus {
	if in.SellStatus != "" {
		return model.SellStatus(in.SellStatus)
	}
	if in.Stock == 0 {
		return model.SellStatusSoldOut
	}
	return model.SellStatusSell
}

// 先頭の画像が代表画像。代表は1枚だけ。
func buildImages(urls []string) []model.ItemImage {
	images := make([]model.ItemImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, model.ItemImage{
			ImageURL: url,
			RepImage: i == 0,
			Ordering: i,
		})
	}
	return images
}

// Registerは商品と画像を同じトランザクションで登録する。画像は1枚以上必須。
func (u *ItemUsecase) Register(ctx context.Context, in ItemInput) (int64, error) {
	if err := validateItemInput(in); err != nil {
		return 0, err
	}
	if len(in.ImageURLs) == 0 {
		return 0, ErrInvalidInput
	}

	var itemID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Items().Create(ctx, model.Item{
			Name:       strings.TrimSpace(in.Name),
			Price:      in.Price,
			Detail:     in.Detail,
			Stock:      in.Stock,
			SellStatus: resolveSellStatus(in),
		})
		if err != nil {
			return err
		}

		if err := r.ItemImages().CreateAll(ctx, created.ID, buildImages(in.ImageURLs)); err != nil {
			return err
		}

		itemID = created.ID
		return nil
	})

	if err != nil {
		return 0, err
	}

	u.logger.Info("item registered", zap.Int64("item_id", itemID))
	return itemID, nil
}

// Updateは商品情報を置き換える。画像URLが来たときだけ画像リストも差し替える。
func (u *ItemUsecase) Update(ctx context.Context, itemID int64, in ItemInput) error {
	if itemID <= 0 {
		return ErrInvalidInput
	}
	if err := validateItemInput(in); err != nil {
		return err
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Items().FindByID(ctx, itemID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		err := r.Items().Update(ctx, model.Item{
			ID:         itemID,
			Name:       strings.TrimSpace(in.Name),
			Price:      in.Price,
			Detail:     in.Detail,
			Stock:      in.Stock,
			SellStatus: resolveSellStatus(in),
		})
		if err != nil {
			return err
		}

		if len(in.ImageURLs) > 0 {
			if err := r.ItemImages().DeleteByItemID(ctx, itemID); err != nil {
				return err
			}
			if err := r.ItemImages().CreateAll(ctx, itemID, buildImages(in.ImageURLs)); err != nil {
				return err
			}
		}

		return nil
	})
}

// Detailは商品と画像（ordering昇順）を返す。
func (u *ItemUsecase) Detail(ctx context.Context, itemID int64) (ItemDetailOutput, error) {
	if itemID <= 0 {
		return ItemDetailOutput{}, ErrInvalidInput
	}

	item, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ItemDetailOutput{}, ErrNotFound
		}
		return ItemDetailOutput{}, err
	}

	images, err := u.images.ListByItemID(ctx, itemID)
	if err != nil {
		return ItemDetailOutput{}, err
	}

	return ItemDetailOutput{Item: item, Images: images}, nil
}

// Searchは商品一覧（公開の閲覧と管理画面の両方で使う）。
func (u *ItemUsecase) Search(ctx context.Context, in ItemSearchInput) (ItemPageOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	// 管理画面の既定は1ページ5件
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 5
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ItemPageOutput{}, ErrInvalidInput
	}
	switch model.SellStatus(in.SellStatus) {
	case "", model.SellStatusSell, model.SellStatusSoldOut:
	default:
		return ItemPageOutput{}, ErrInvalidInput
	}

	items, total, err := u.items.Search(ctx, repo.ItemSearchQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		SellStatus: in.SellStatus,
		Sort:       in.Sort,
	})
	if err != nil {
		return ItemPageOutput{}, err
	}

	return ItemPageOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}
