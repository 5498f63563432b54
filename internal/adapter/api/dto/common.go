package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// totalPages calcula o número total de páginas com base no total de registros
// e no tamanho da página
func totalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	pages := (totalCount + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}

	return pages
}
