package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff: мастер не найден")
	ErrBuildQuery    = errors.New("staff: ошибка построения запроса")
	ErrExecQuery     = errors.New("staff: ошибка выполнения запроса")
	ErrScanRow       = errors.New("staff: ошибка чтения строки")
)
