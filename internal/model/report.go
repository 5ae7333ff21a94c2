package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// ReportRow описывает одну строку источника отчёта: завершённую задачу
// с именем пользователя и длительностью end_time - start_time.
type ReportRow struct {
	UserName string
	TaskName string
	Duration time.Duration
}

// TaskEntry описывает один элемент отчёта по пользователю.
// Сериализуется как объект с единственным ключом: {"<task>": "<duration>"}.
type TaskEntry struct {
	TaskName string
	Duration string
}

// MarshalJSON реализует сериализацию записи в объект с одним ключом.
func (e TaskEntry) MarshalJSON() ([]byte, error) {
	name, err := json.Marshal(e.TaskName)
	if err != nil {
		return nil, err
	}
	dur, err := json.Marshal(e.Duration)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(name)
	buf.WriteByte(':')
	buf.Write(dur)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report накапливает завершённые задачи, сгруппированные по имени пользователя.
// Порядок пользователей — порядок первого появления, порядок задач внутри
// пользователя — порядок добавления строк. Обычная map порядок ключей не
// сохраняет, поэтому Report держит отдельный срез с порядком и сериализуется
// вручную.
type Report struct {
	order   []string
	entries map[string][]TaskEntry
}

// NewReport создаёт пустой отчёт.
func NewReport() *Report {
	return &Report{entries: make(map[string][]TaskEntry)}
}

// Add добавляет запись в список пользователя, создавая список при первом появлении.
func (r *Report) Add(userName string, entry TaskEntry) {
	if _, ok := r.entries[userName]; !ok {
		r.order = append(r.order, userName)
	}
	r.entries[userName] = append(r.entries[userName], entry)
}

// Len возвращает число пользователей в отчёте. Нулевая длина означает,
// что завершённых задач нет и наружу должен уйти сигнал "нет содержимого".
func (r *Report) Len() int {
	return len(r.order)
}

// Users возвращает имена пользователей в порядке первого появления.
func (r *Report) Users() []string {
	return r.order
}

// Entries возвращает записи пользователя в порядке добавления.
func (r *Report) Entries(userName string) []TaskEntry {
	return r.entries[userName]
}

// MarshalJSON сериализует отчёт как JSON-объект, сохраняя порядок ключей.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, userName := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(userName)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		list, err := json.Marshal(r.entries[userName])
		if err != nil {
			return nil, err
		}
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
