package block

import "errors"

var (
	ErrBlockNotFound = errors.New("block: блокировка не найдена")
	ErrBuildQuery    = errors.New("block: ошибка построения запроса")
	ErrExecQuery     = errors.New("block: ошибка выполнения запроса")
	ErrScanRow       = errors.New("block: ошибка чтения строки")
)
