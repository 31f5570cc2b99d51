package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionHappyPath(t *testing.T) {
	path := []TaskStatus{
		StatusPending, StatusScheduled, StatusVisited, StatusAuditing,
		StatusApproved, StatusDelivering, StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, path[i].CanTransition(path[i+1]), "%s -> %s should be allowed", path[i], path[i+1])
	}
	assert.True(t, StatusAuditing.CanTransition(StatusRejected))
}

func TestCanTransitionRejectsSkipsAndReversals(t *testing.T) {
	cases := []struct {
		from, to TaskStatus
	}{
		{StatusPending, StatusVisited},
		{StatusPending, StatusCompleted},
		{StatusScheduled, StatusPending},
		{StatusVisited, StatusApproved},
		{StatusApproved, StatusRejected},
		{StatusDelivering, StatusAuditing},
	}
	for _, tc := range cases {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be refused", tc.from, tc.to)
	}
}

func TestTerminalStatusesAcceptNothing(t *testing.T) {
	all := []TaskStatus{
		StatusPending, StatusScheduled, StatusVisited, StatusAuditing,
		StatusApproved, StatusRejected, StatusDelivering, StatusCompleted,
	}
	for _, terminal := range []TaskStatus{StatusRejected, StatusCompleted} {
		assert.True(t, terminal.Terminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransition(next), "%s -> %s should be refused", terminal, next)
		}
	}
	assert.False(t, StatusAuditing.Terminal())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusDelivering))
	assert.False(t, ValidStatus(TaskStatus("archived")))
	assert.False(t, ValidStatus(TaskStatus("")))
}

func TestLabelCoversEveryStatus(t *testing.T) {
	expected := map[TaskStatus]string{
		StatusPending:    "待处理",
		StatusScheduled:  "已预约",
		StatusVisited:    "已上门",
		StatusAuditing:   "待审核",
		StatusApproved:   "审核通过",
		StatusRejected:   "已驳回",
		StatusDelivering: "送达中",
		StatusCompleted:  "已完成",
	}
	for s, label := range expected {
		assert.Equal(t, label, s.Label())
	}
}

func TestPortalStep(t *testing.T) {
	assert.Equal(t, 1, StatusPending.PortalStep())
	assert.Equal(t, 1, StatusScheduled.PortalStep())
	assert.Equal(t, 1, StatusVisited.PortalStep())
	assert.Equal(t, 3, StatusAuditing.PortalStep())
	assert.Equal(t, 3, StatusApproved.PortalStep())
	assert.Equal(t, 3, StatusDelivering.PortalStep())
	assert.Equal(t, 4, StatusCompleted.PortalStep())
	assert.Equal(t, 1, StatusRejected.PortalStep())
}

func TestInProgress(t *testing.T) {
	for _, s := range []TaskStatus{StatusScheduled, StatusVisited, StatusAuditing, StatusDelivering} {
		assert.True(t, s.InProgress(), "%s counts as in progress", s)
	}
	for _, s := range []TaskStatus{StatusPending, StatusApproved, StatusRejected, StatusCompleted} {
		assert.False(t, s.InProgress(), "%s does not count as in progress", s)
	}
}
