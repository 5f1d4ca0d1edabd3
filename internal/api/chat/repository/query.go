package chatRepository

const (
	queryCreateQueryLog = `
		INSERT INTO query_logs (
			id,
			request_id,
			message,
			query_type,
			params,
			resolved,
			created_at
		) VALUES (
			:id,
			:request_id,
			:message,
			:query_type,
			:params,
			:resolved,
			:created_at
		)
	`
)
