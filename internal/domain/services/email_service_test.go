package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalEmailBody(t *testing.T) {
	body, err := renderEmail(approvalTemplate, emailContext{Name: "Bat Dorj"})
	require.NoError(t, err)
	assert.Contains(t, body, "Dear Bat Dorj,")
	assert.Contains(t, body, "has been approved")
}

func TestRejectionEmailBodyWithReason(t *testing.T) {
	body, err := renderEmail(rejectionTemplate, emailContext{Name: "Bat Dorj", Reason: "Incomplete payment confirmation"})
	require.NoError(t, err)
	assert.Contains(t, body, "could not be approved")
	assert.Contains(t, body, "Reason: Incomplete payment confirmation")
}

func TestRejectionEmailBodyWithoutReason(t *testing.T) {
	body, err := renderEmail(rejectionTemplate, emailContext{Name: "Bat Dorj"})
	require.NoError(t, err)
	assert.NotContains(t, body, "Reason:")
}

func TestRejectionEmailEscapesReason(t *testing.T) {
	body, err := renderEmail(rejectionTemplate, emailContext{Name: "Bat", Reason: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestConsoleEmailServiceNeverFails(t *testing.T) {
	svc := NewConsoleEmailService()
	assert.NoError(t, svc.SendApprovalEmail("a@example.com", "Bat"))
	assert.NoError(t, svc.SendRejectionEmail("a@example.com", "Bat", "late"))
}
