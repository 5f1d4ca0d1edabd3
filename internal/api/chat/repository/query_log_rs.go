package chatRepository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"rtlmac/internal/entity"
	contextPkg "rtlmac/pkg/context"
)

func (r *queryLogRepository) CreateQueryLog(c context.Context, queryLog entity.QueryLog) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         queryLog.ID,
		"request_id": queryLog.RequestID,
		"message":    queryLog.Message,
		"query_type": queryLog.QueryType,
		"params":     queryLog.Params,
		"resolved":   queryLog.Resolved,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateQueryLog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateQueryLog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating query log")

		return err
	}

	return nil
}
