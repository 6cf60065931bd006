package services

import (
	"slices"

	"github.com/terraincognita07/dayledger/internal/models"
)

type TransitionTable map[string][]string

func permissiveTable(statuses ...string) TransitionTable {
	table := make(TransitionTable, len(statuses))
	for _, status := range statuses {
		table[status] = slices.Clone(statuses)
	}
	return table
}

var TaskTransitions = permissiveTable(
	models.TaskStatusTodo,
	models.TaskStatusInProgress,
	models.TaskStatusDone,
	models.TaskStatusBlocked,
)

var InvoiceTransitions = permissiveTable(
	models.InvoiceStatusDraft,
	models.InvoiceStatusSent,
	models.InvoiceStatusPaid,
	models.InvoiceStatusOverdue,
	models.InvoiceStatusCancelled,
)

func (table TransitionTable) Known(status string) bool {
	_, ok := table[status]
	return ok
}

// Check validates a move from one status to another. Stored rows carrying a
// status the table does not know may still move to any known status.
func (table TransitionTable) Check(from string, to string) error {
	if !table.Known(to) {
		return newValidationError("status", "invalid status value")
	}
	if from == to || !table.Known(from) {
		return nil
	}
	if !slices.Contains(table[from], to) {
		return newValidationError("status", "cannot change status from %s to %s", from, to)
	}
	return nil
}
