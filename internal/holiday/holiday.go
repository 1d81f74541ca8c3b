// Package holiday carries the static Korean holiday table consulted by the
// calendar and the monthly export. The table is read-only data, not a
// user-editable record kind.
package holiday

// Holiday is one calendar-date annotation. IsPublic is true for statutory
// public holidays and false for observances (기념일).
type Holiday struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}

// Table2026 lists the 2026 holidays and observances.
var Table2026 = []Holiday{
	{Date: "2026-01-01", Name: "신정", IsPublic: true},
	{Date: "2026-02-16", Name: "설날 연휴", IsPublic: true},
	{Date: "2026-02-17", Name: "설날", IsPublic: true},
	{Date: "2026-02-18", Name: "설날 연휴", IsPublic: true},
	{Date: "2026-03-01", Name: "삼일절", IsPublic: true},
	{Date: "2026-03-02", Name: "삼일절 대체공휴일", IsPublic: true},
	{Date: "2026-05-05", Name: "어린이날", IsPublic: true},
	{Date: "2026-05-24", Name: "부처님 오신 날", IsPublic: true},
	{Date: "2026-05-25", Name: "부처님 오신 날 대체공휴일", IsPublic: true},
	{Date: "2026-06-06", Name: "현충일", IsPublic: true},
	{Date: "2026-07-17", Name: "제헌절", IsPublic: true},
	{Date: "2026-08-15", Name: "광복절", IsPublic: true},
	{Date: "2026-08-17", Name: "광복절 대체공휴일", IsPublic: true},
	{Date: "2026-09-24", Name: "추석 연휴", IsPublic: true},
	{Date: "2026-09-25", Name: "추석", IsPublic: true},
	{Date: "2026-09-26", Name: "추석 연휴", IsPublic: true},
	{Date: "2026-10-03", Name: "개천절", IsPublic: true},
	{Date: "2026-10-05", Name: "개천절 대체공휴일", IsPublic: true},
	{Date: "2026-10-09", Name: "한글날", IsPublic: true},
	{Date: "2026-12-25", Name: "크리스마스", IsPublic: true},
	// 기념일
	{Date: "2026-02-14", Name: "발렌타인데이", IsPublic: false},
	{Date: "2026-03-20", Name: "춘분", IsPublic: false},
	{Date: "2026-04-05", Name: "식목일", IsPublic: false},
	{Date: "2026-05-01", Name: "근로자의 날", IsPublic: false},
	{Date: "2026-05-08", Name: "어버이날", IsPublic: false},
	{Date: "2026-05-15", Name: "스승의 날", IsPublic: false},
	{Date: "2026-06-21", Name: "하지", IsPublic: false},
	{Date: "2026-09-23", Name: "추분", IsPublic: false},
	{Date: "2026-10-01", Name: "국군의 날", IsPublic: false},
	{Date: "2026-12-22", Name: "동지", IsPublic: false},
}

var byDate = func() map[string]Holiday {
	m := make(map[string]Holiday, len(Table2026))
	for _, h := range Table2026 {
		m[h.Date] = h
	}
	return m
}()

// Lookup returns the holiday for a date in DateLayout form, if any.
func Lookup(date string) (Holiday, bool) {
	h, ok := byDate[date]
	return h, ok
}

// IsStatutory reports whether the date is a statutory public holiday.
func IsStatutory(date string) bool {
	h, ok := byDate[date]
	return ok && h.IsPublic
}
