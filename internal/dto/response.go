package dto

// Response is the envelope every endpoint answers with.
type Response struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message,omitempty"`
	Code      string  `json:"code,omitempty"`
	Count     *int    `json:"count,omitempty"`
	Data      any     `json:"data,omitempty"`
	NextToken *string `json:"nextToken,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKWithMessage wraps data in a success envelope with a message.
func OKWithMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList wraps a listing, carrying its size and an optional continuation token.
func OKList(data any, count int, nextToken *string) Response {
	return Response{Success: true, Data: data, Count: &count, NextToken: nextToken}
}

// Fail builds a failure envelope. Message must already be safe to show.
func Fail(code, message string) Response {
	return Response{Success: false, Code: code, Message: message}
}
