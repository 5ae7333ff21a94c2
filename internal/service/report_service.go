package service

import (
	"context"

	"task-tracker-service/internal/model"
)

// FinishedTaskSource описывает контракт источника строк отчёта: конечная
// однопроходная последовательность завершённых задач, отсортированная по
// имени пользователя, затем по времени старта.
type FinishedTaskSource interface {
	StreamFinishedTasks(ctx context.Context, yield func(model.ReportRow) error) error
}

// ReportService собирает отчёт по завершённым задачам, сгруппированный по
// пользователям.
type ReportService struct {
	source FinishedTaskSource
}

// NewReportService создаёт новый сервис построения отчёта.
func NewReportService(source FinishedTaskSource) *ReportService {
	return &ReportService{source: source}
}

// Build прогоняет поток завершённых задач через аккумулятор и возвращает
// готовый отчёт. Порядок групп и записей определяется порядком доставки
// строк источником, сервис ничего не пересортировывает. Пустой отчёт
// (Len() == 0) означает, что завершённых задач нет.
func (s *ReportService) Build(ctx context.Context) (*model.Report, error) {
	report := model.NewReport()

	err := s.source.StreamFinishedTasks(ctx, func(row model.ReportRow) error {
		report.Add(row.UserName, model.TaskEntry{
			TaskName: row.TaskName,
			Duration: FormatDuration(row.Duration),
		})
		return nil
	})
	if err != nil {
		return nil, ErrInternal("failed to build report", err)
	}

	return report, nil
}
