package usecase

import "errors"

// エンジンはこの4つをそのまま呼び出し元へ返す。HTTPへの変換はhandlerの仕事。
var (
	// 参照したエンティティが存在しない
	ErrNotFound = errors.New("not found")
	// 注文数が在庫を超えている
	ErrInsufficientStock = errors.New("insufficient stock")
	// 権限がない（他人の注文・ADMIN専用操作）
	ErrForbidden = errors.New("forbidden")
	// 有効なセッションがない
	ErrUnauthenticated = errors.New("unauthenticated")

	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)
