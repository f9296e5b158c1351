package safety

import (
	"sync"
	"testing"
	"time"
)

func Test_ConfirmationTracker_NeedsConfirmation_Cases(t *testing.T) {
	ct := NewConfirmationTracker([]string{"article_delete", "user_unfollow"})

	tests := []struct {
		tool string
		want bool
	}{
		{tool: "article_delete", want: true},
		{tool: "user_unfollow", want: true},
		{tool: "article_get", want: false},
		{tool: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			if got := ct.NeedsConfirmation(tt.tool); got != tt.want {
				t.Errorf("NeedsConfirmation(%q) = %v, want %v", tt.tool, got, tt.want)
			}
		})
	}
}

func Test_ConfirmationTracker_Confirm_Cases(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		resource string
		want     bool
	}{
		{name: "same tool and resource", tool: "article_delete", resource: "article 7", want: true},
		{name: "different resource", tool: "article_delete", resource: "article 8", want: false},
		{name: "different tool", tool: "user_unfollow", resource: "article 7", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := NewConfirmationTracker([]string{"article_delete"})
			token := ct.RequestConfirmation("article_delete", "article 7")

			if got := ct.Confirm(token, tt.tool, tt.resource); got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if ct.Pending() != 0 {
				t.Errorf("Pending() = %d after Confirm, want 0", ct.Pending())
			}
		})
	}
}

func Test_ConfirmationTracker_Confirm_SingleUse(t *testing.T) {
	ct := NewConfirmationTracker([]string{"article_delete"})
	token := ct.RequestConfirmation("article_delete", "article 1")

	if !ct.Confirm(token, "article_delete", "article 1") {
		t.Fatal("first Confirm should succeed")
	}
	if ct.Confirm(token, "article_delete", "article 1") {
		t.Error("second Confirm with the same token should fail")
	}
}

func Test_ConfirmationTracker_Confirm_EmptyAndUnknownToken(t *testing.T) {
	ct := NewConfirmationTracker(nil)
	if ct.Confirm("", "article_delete", "article 1") {
		t.Error("empty token must not confirm")
	}
	if ct.Confirm("deadbeef", "article_delete", "article 1") {
		t.Error("unknown token must not confirm")
	}
}

func Test_ConfirmationTracker_Confirm_Expired(t *testing.T) {
	ct := NewConfirmationTracker([]string{"article_delete"})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ct.now = func() time.Time { return now }

	token := ct.RequestConfirmation("article_delete", "article 1")
	now = now.Add(tokenTTL + time.Second)

	if ct.Confirm(token, "article_delete", "article 1") {
		t.Error("expired token must not confirm")
	}
}

func Test_ConfirmationTracker_RequestConfirmation_SweepsExpired(t *testing.T) {
	ct := NewConfirmationTracker([]string{"article_delete"})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ct.now = func() time.Time { return now }

	ct.RequestConfirmation("article_delete", "article 1")
	ct.RequestConfirmation("article_delete", "article 2")
	now = now.Add(tokenTTL + time.Minute)
	ct.RequestConfirmation("article_delete", "article 3")

	if got := ct.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}
}

func Test_ConfirmationTracker_Concurrent(t *testing.T) {
	ct := NewConfirmationTracker([]string{"article_delete"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := ct.RequestConfirmation("article_delete", "article 1")
			if !ct.Confirm(token, "article_delete", "article 1") {
				t.Error("concurrent Confirm failed")
			}
		}()
	}
	wg.Wait()
}

func Test_ConfirmationTracker_Approved_Cases(t *testing.T) {
	ct := NewConfirmationTracker([]string{"article_delete"})

	if !ct.Approved("", "user_unfollow", "user 2") {
		t.Error("tool outside the destructive set should be approved without a token")
	}
	if ct.Approved("", "article_delete", "article 7") {
		t.Error("destructive tool approved without a token")
	}

	token := ct.RequestConfirmation("article_delete", "article 7")
	if ct.Approved(token, "article_delete", "article 8") {
		t.Error("token approved for another resource")
	}

	token = ct.RequestConfirmation("article_delete", "article 7")
	if !ct.Approved(token, "article_delete", "article 7") {
		t.Error("matching token not approved")
	}
	if ct.Approved(token, "article_delete", "article 7") {
		t.Error("token approved twice")
	}
}
