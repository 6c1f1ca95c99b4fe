package results

// CalculateToolResult represents the result of the calculate tool
type CalculateToolResult struct {
	Message   string            `json:"message"`
	Arguments CalculateToolArgs `json:"arguments"`
	Result    *float64          `json:"result,omitempty"`
	Display   string            `json:"display,omitempty"`
	Error     *ErrorInfo        `json:"error,omitempty"`
}

// CalculateToolArgs represents the input arguments for the calculate tool
type CalculateToolArgs struct {
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
	Operation string  `json:"operation"`
}
