package chat

type QueryRequest struct {
	Message string        `json:"message" validate:"required"`
	History []HistoryItem `json:"history"`
}

// HistoryItem is accepted for API compatibility with conversational clients.
// Every query is classified from scratch; history is never read.
type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type QueryResponse struct {
	Success   bool        `json:"success"`
	Content   string      `json:"content"`
	Data      interface{} `json:"data"`
	QueryType string      `json:"query_type"`
}

type CatalogEntry struct {
	Category    string `json:"category"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type CatalogResponse struct {
	Categories []CatalogEntry `json:"categories"`
}
