package repository

import "errors"

var (
	// 厳密な取得で行が無い
	ErrNotFound   = errors.New("not found")
	// 一意制約違反
	ErrDuplicate  = errors.New("duplicate")
	// 他の行から参照されていて消せない
	ErrReferenced = errors.New("referenced by other rows")
)
