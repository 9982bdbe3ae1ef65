package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// AuditLog records a business action such as a product import or a quote.
// Entries go through the global async logger and are skipped when it is not initialized.
func AuditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	enqueueAudit(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed business action.
func AuditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueueAudit(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}
}

func enqueueAudit(entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
	}
}
