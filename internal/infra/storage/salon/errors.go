package salon

import "errors"

var (
	ErrSalonNotFound = errors.New("salon: салон не найден")
	ErrBuildQuery    = errors.New("salon: ошибка построения запроса")
	ErrExecQuery     = errors.New("salon: ошибка выполнения запроса")
)
