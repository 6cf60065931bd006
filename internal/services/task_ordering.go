package services

import (
	"sort"

	"github.com/terraincognita07/dayledger/internal/models"
)

func priorityRank(priority *string) int {
	if priority == nil {
		return 0
	}
	switch *priority {
	case models.PriorityHigh:
		return 3
	case models.PriorityMedium:
		return 2
	case models.PriorityLow:
		return 1
	default:
		return 0
	}
}

func SortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left, right := tasks[i], tasks[j]
		if left.Pinned != right.Pinned {
			return left.Pinned
		}
		if leftRank, rightRank := priorityRank(left.Priority), priorityRank(right.Priority); leftRank != rightRank {
			return leftRank > rightRank
		}
		if !left.CreatedAt.Equal(right.CreatedAt) {
			return left.CreatedAt.After(right.CreatedAt)
		}
		return left.ID < right.ID
	})
}
