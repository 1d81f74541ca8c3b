// Package seed holds the built-in data used to bootstrap an empty store.
// The record store falls back to these entries when both the database and
// the cache have nothing for a kind.
package seed

import (
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
)

// Schedules are the initial school schedule entries.
func Schedules() []model.Schedule {
	return []model.Schedule{
		{
			ScheduleID:  "seed-sch-1",
			Title:       "주간학습안내 제출",
			Date:        "2026-02-22",
			Category:    model.CategoryOfficialDocument,
			Description: "각 학년 주간학습안내 교무실 제출",
			AuthorEmail: "namdol01@sc2.gyo6.net",
		},
		{
			ScheduleID:  "seed-sch-2",
			Title:       "교직원 월례회의",
			Date:        "2026-02-23",
			TimeRange:   "15:00",
			Location:    "시청각실",
			Target:      "전 교직원",
			Category:    model.CategoryEvent,
			AuthorEmail: "namdol01@sc2.gyo6.net",
		},
		{
			ScheduleID:  "seed-sch-3",
			Title:       "나이스 복무 신청(연가)",
			Date:        "2026-02-24",
			Category:    model.CategoryDuty,
			AuthorEmail: "namdol01@sc2.gyo6.net",
		},
		{
			ScheduleID:  "seed-sch-4",
			Title:       "학교폭력 예방 연수",
			Date:        "2026-02-24",
			TimeRange:   "14:00",
			Target:      "전 교직원",
			Category:    model.CategoryTraining,
			AuthorEmail: "namdol01@sc2.gyo6.net",
		},
	}
}

// TrainingPosts are the initial training board entries.
func TrainingPosts() []model.TrainingPost {
	return []model.TrainingPost{
		{
			PostID:      "seed-post-1",
			Title:       "2026학년도 학교폭력 예방교육 자료",
			Author:      "생활인성부",
			Date:        "2026-02-20",
			AuthorEmail: "namdol01@sc2.gyo6.net",
			Summary:     "학급별 학교폭력 예방교육 시 활용할 수 있는 연수 자료입니다.",
			PDFURL:      "/files/school-violence-prevention-2026.pdf",
			FileType:    "pdf",
		},
		{
			PostID:      "seed-post-2",
			Title:       "개인정보보호 교직원 연수 자료",
			Author:      "정보부",
			Date:        "2026-02-21",
			AuthorEmail: "namdol01@sc2.gyo6.net",
			Summary:     "교직원 대상 개인정보보호 의무 연수 자료입니다.",
			PDFURL:      "/files/privacy-training-2026.pdf",
			FileType:    "pdf",
		},
	}
}

// Shortcuts are the initial quick-link entries shown on the dashboard.
func Shortcuts() []model.Shortcut {
	return []model.Shortcut{
		{ShortcutID: "seed-link-1", Label: "나이스", URL: "https://neis.go.kr"},
		{ShortcutID: "seed-link-2", Label: "K-에듀파인", URL: "https://klef.go.kr"},
		{ShortcutID: "seed-link-3", Label: "학교 홈페이지", URL: "https://dasu.es.kr"},
		{ShortcutID: "seed-link-4", Label: "경북교육청", URL: "https://www.gbe.kr"},
	}
}

// Users returns no seed users. Accounts come from the admin bootstrap in
// config and from CSV bulk registration.
func Users() []model.User {
	return nil
}
