package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Members() MemberRepository
	Items() ItemRepository
	ItemImages() ItemImageRepository
	Orders() OrderRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。fnがエラーを返したら全部rollback。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
