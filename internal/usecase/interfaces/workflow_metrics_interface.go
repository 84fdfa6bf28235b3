package interfaces

// IWorkflowMetrics records workflow outcomes. Implementations must accept concurrent calls.
type IWorkflowMetrics interface {
	BudgetCreated()
	BudgetTransition(status string, result string)
	InvoiceGenerated(result string)
	ReconciliationRepaired(count int)
}
