package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mall/internal/domain/model"
	repo "mall/internal/repository"

	"go.uber.org/zap"
)

// 注文する商品と数量のペア
type OrderLine struct {
	ItemID int64 `json:"item_id"`
	Count  int64 `json:"count"`
}

// 購入履歴1明細（表示用。画像は代表画像）
type OrderHistoryLine struct {
	ItemID     int64  `json:"item_id"`
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int64  `json:"count"`
	ImageURL   string `json:"image_url"`
}

type OrderHistory struct {
	OrderID     int64              `json:"order_id"`
	OrderDate   time.Time          `json:"order_date"`
	Status      string             `json:"status"`
	TotalAmount int64              `json:"total_amount"`
	Lines       []OrderHistoryLine `json:"lines"`
}

// ページング情報込みの購入履歴
type OrderHistoryPage struct {
	Orders     []OrderHistory `json:"orders"`
	Page       int            `json:"page"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

type OrderUsecase struct {
	tx      repo.TransactionManager
	members repo.MemberRepository
	orders  repo.OrderRepository
	items   repo.ItemRepository
	images  repo.ItemImageRepository
	logger  *zap.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	members repo.MemberRepository,
	orders repo.OrderRepository,
	items repo.ItemRepository,
	images repo.ItemImageRepository,
	logger *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:      tx,
		members: members,
		orders:  orders,
		items:   items,
		images:  images,
		logger:  logger,
	}
}

// Placeは注文を1件作ってIDを返す。
// 在庫減算とOrder/OrderItemのinsertは同じトランザクション。
// 途中の商品で在庫が足りなければ全部rollbackされる（先に減らした分も戻る）。
func (u *OrderUsecase) Place(ctx context.Context, memberEmail string, lines []OrderLine) (int64, error) {
	if len(lines) == 0 {
		return 0, ErrInvalidInput
	}
	for _, line := range lines {
		if line.ItemID <= 0 || line.Count <= 0 {
			return 0, ErrInvalidInput
		}
	}

	member, err := u.members.FindByEmail(ctx, memberEmail)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	var orderID int64

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(lines))

		for _, line := range lines {
			item, err := r.Items().FindByID(ctx, line.ItemID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return ErrNotFound
				}
				return err
			}

			// 在庫チェックと減算を1文で。0行更新なら在庫不足。
			ok, err := r.Items().DecrementStockIfEnough(ctx, line.ItemID, line.Count)
			if err != nil {
				return err
			}
			if !ok {
				u.logger.Info("order rejected: insufficient stock",
					zap.Int64("item_id", line.ItemID),
					zap.Int64("count", line.Count))
				return ErrInsufficientStock
			}

			// 減算後の在庫を同一tx内で読み直して、売り切れたらSOLD_OUTへ
			after, err := r.Items().FindByID(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if after.Stock == 0 {
				if err := r.Items().UpdateSellStatus(ctx, line.ItemID, model.SellStatusSoldOut); err != nil {
					return err
				}
			}

			// 価格は注文時点をスナップショット
			orderItems = append(orderItems, model.OrderItem{
				ItemID:     line.ItemID,
				OrderPrice: item.Price,
				Count:      line.Count,
			})
		}

		order := model.Order{
			MemberID:  member.ID,
			OrderDate: time.Now(),
			Status:    model.OrderStatusOrder,
			Items:     orderItems,
		}

		id, err := r.Orders().Create(ctx, &order)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// Cancelは注文をCANCELにして在庫を戻す。
// CANCEL済みの注文は何もしない（二重キャンセルで在庫を2回戻さない）。
func (u *OrderUsecase) Cancel(ctx context.Context, orderID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		if order.Status == model.OrderStatusCancel {
			return nil
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancel); err != nil {
			return err
		}

		for _, it := range order.Items {
			// 戻す前の在庫を読む。0→正に戻るときだけSELLへ戻す
			// （在庫を残したまま手動でSOLD_OUTにした商品は触らない）。
			before, err := r.Items().FindByID(ctx, it.ItemID)
			if err != nil {
				return err
			}

			if err := r.Items().IncrementStock(ctx, it.ItemID, it.Count); err != nil {
				return err
			}

			if before.Stock == 0 {
				if err := r.Items().UpdateSellStatus(ctx, it.ItemID, model.SellStatusSell); err != nil {
					return err
				}
			}
		}

		u.logger.Info("order canceled", zap.Int64("order_id", orderID))
		return nil
	})
}

// ValidateOwnershipは注文した本人かどうかを返す。
// 本人でないときはerrorではなくfalse。注文が無いときだけErrNotFound。
func (u *OrderUsecase) ValidateOwnership(ctx context.Context, orderID int64, requesterEmail string) (bool, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	owner, err := u.members.FindByID(ctx, order.MemberID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	// trimしてから大文字小文字は区別して比較
	return strings.TrimSpace(owner.Email) == strings.TrimSpace(requesterEmail), nil
}

// ListHistoryは購入履歴を新しい順でページングして返す。
// 明細ごとに代表画像を引く。代表画像が無い商品はデータ不整合としてErrNotFound
// （黙って画像なしで返したりはしない）。
func (u *OrderUsecase) ListHistory(ctx context.Context, memberEmail string, page int, pageSize int) (OrderHistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 4
	}

	orders, err := u.orders.ListForMember(ctx, memberEmail, page, pageSize)
	if err != nil {
		return OrderHistoryPage{}, err
	}

	total, err := u.orders.CountForMember(ctx, memberEmail)
	if err != nil {
		return OrderHistoryPage{}, err
	}

	histories := make([]OrderHistory, 0, len(orders))
	for _, order := range orders {
		hist := OrderHistory{
			OrderID:     order.ID,
			OrderDate:   order.OrderDate,
			Status:      string(order.Status),
			TotalAmount: order.TotalAmount(),
			Lines:       make([]OrderHistoryLine, 0, len(order.Items)),
		}

		for _, oi := range order.Items {
			item, err := u.items.FindByID(ctx, oi.ItemID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return OrderHistoryPage{}, ErrNotFound
				}
				return OrderHistoryPage{}, err
			}

			img, err := u.images.FindRepresentativeByItemID(ctx, oi.ItemID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return OrderHistoryPage{}, ErrNotFound
				}
				return OrderHistoryPage{}, err
			}

			hist.Lines = append(hist.Lines, OrderHistoryLine{
				ItemID:     oi.ItemID,
				ItemName:   item.Name,
				OrderPrice: oi.OrderPrice,
				Count:      oi.Count,
				ImageURL:   img.ImageURL,
			})
		}

		histories = append(histories, hist)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return OrderHistoryPage{
		Orders:     histories,
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
