package timezone

import (
	"errors"
	"fmt"
	"time"

	"github.com/akholodov/salon-booking-service/pkg/types"
)

var (
	// ErrUnknownZone возвращается при неизвестной IANA зоне
	ErrUnknownZone = errors.New("timezone: unknown IANA zone")
)

// Normalizer единая граница преобразования между хранимыми UTC-инстантами
// и локальным временем салона.
//
// Правило: вся интервальная арифметика (расписания, блокировки, слоты)
// выполняется ТОЛЬКО в локальном времени салона; всё, что пишется в БД,
// ТОЛЬКО в абсолютных инстантах. Смешивание представлений в одном
// вычислении запрещено — каждый компонент проходит через Normalizer.
type Normalizer struct {
	loc *time.Location
}

// New создает Normalizer для IANA зоны (например, "America/Sao_Paulo")
// Фиксированные смещения не поддерживаются намеренно: зона обязана
// учитывать правила перехода на летнее время
func New(name string) (*Normalizer, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty zone name", ErrUnknownZone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
	}
	return &Normalizer{loc: loc}, nil
}

// Location возвращает загруженную *time.Location
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToLocal конвертирует абсолютный инстант в локальное время салона
func (n *Normalizer) ToLocal(instant time.Time) time.Time {
	return instant.In(n.loc)
}

// ToInstant собирает абсолютный UTC-инстант из календарной даты
// (поля год/месяц/день трактуются как локальная дата салона)
// и локального времени дня
func (n *Normalizer) ToInstant(date time.Time, t types.TimeString) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	local := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, n.loc)
	return local.UTC(), nil
}

// DayBounds возвращает полуинтервал [from, to) UTC-инстантов,
// покрывающий локальные календарные сутки date
// В дни перевода часов сутки могут длиться 23 или 25 часов
func (n *Normalizer) DayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, n.loc)
	to := time.Date(y, m, d+1, 0, 0, 0, 0, n.loc)
	return from.UTC(), to.UTC()
}

// Weekday возвращает день недели календарной даты (0 = воскресенье,
// как в time.Weekday и в хранимом представлении расписаний)
// Полдень вместо полуночи страхует от DST-сдвигов начала суток
func (n *Normalizer) Weekday(date time.Time) time.Weekday {
	y, m, d := date.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, n.loc).Weekday()
}

// LocalDate возвращает локальную календарную дату инстанта
// (время обнулено, зона — зона салона)
func (n *Normalizer) LocalDate(instant time.Time) time.Time {
	local := instant.In(n.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, n.loc)
}

// TimeOfDay возвращает локальное время дня инстанта ("HH:MM")
func (n *Normalizer) TimeOfDay(instant time.Time) types.TimeString {
	return types.NewTimeString(instant.In(n.loc))
}

// MinutesOfDay возвращает локальное время инстанта в минутах с начала суток
func (n *Normalizer) MinutesOfDay(instant time.Time) int {
	local := instant.In(n.loc)
	return local.Hour()*60 + local.Minute()
}

// IsSameLocalDay проверяет, что инстант now приходится на локальную дату date
func (n *Normalizer) IsSameLocalDay(date time.Time, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.In(n.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что календарная дата раньше локальной даты now
func (n *Normalizer) IsDateInPast(date time.Time, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.In(n.loc).Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
