// Package dto 提供 HTTP 层数据传输对象
package dto

// ExplainRequest 解释请求
type ExplainRequest struct {
	Topic      string `json:"topic"`
	Complexity string `json:"complexity,omitempty"`
}

// ExplainResponse 解释响应
type ExplainResponse struct {
	Success     bool   `json:"success"`
	Topic       string `json:"topic"`
	Complexity  string `json:"complexity"`
	Explanation string `json:"explanation"`
	TokensUsed  int    `json:"tokens_used"`
	Model       string `json:"model"`
	Cost        string `json:"cost"`
}

// InfoResponse 服务信息响应
type InfoResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Model     string            `json:"model"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status string `json:"status"`
	API    string `json:"api"`
	Model  string `json:"model"`
}
