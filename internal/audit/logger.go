package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/scheduler-web/internal/logging"
	"github.com/BruksfildServices01/scheduler-web/internal/models"
)

// Logger writes audit events to the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	return l.db.Create(toModel(ev)).Error
}

func toModel(ev Event) *models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return &models.AuditLog{
		VisitorID: ev.VisitorID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}
}

// LogSink writes audit events to the application log. Used when no
// database is configured.
type LogSink struct {
	logger logging.Logger
}

func NewLogSink(logger logging.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Log(ev Event) error {
	m := toModel(ev)
	entityID := int64(0)
	if m.EntityID != nil {
		entityID = *m.EntityID
	}
	s.logger.Infof("audit action=%s entity=%s entity_id=%d visitor=%s metadata=%s",
		m.Action, m.Entity, entityID, m.VisitorID, m.Metadata)
	return nil
}
