package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return string(content)
}

func TestStripIntegrations_Golden(t *testing.T) {
	input := readTestdata(t, "integrations.tsx")
	want := readTestdata(t, "integrations.stripped.tsx")

	assert.Equal(t, want, StripIntegrations(input))
}

func TestStripIntegrations_Idempotent(t *testing.T) {
	once := StripIntegrations(readTestdata(t, "integrations.tsx"))
	twice := StripIntegrations(once)

	assert.Equal(t, once, twice)
}

func TestStripIntegrations_Rules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "api keys loader",
			content: "  const apiKeysList = await listApiKeys(ctx.org.id);\n",
			want:    "  // DIVE-031: Removed API keys loading\n",
		},
		{
			name:    "webhooks loader",
			content: "  const webhooksList = await listWebhooks(ctx.org.id);\n",
			want:    "  // DIVE-031: Removed webhooks loading\n",
		},
		{
			name:    "multi line type alias",
			content: "type WebhookEventType = \"a\"\n  | \"b\";\nconst x = 1;",
			want:    "// DIVE-031: Removed WebhookEventType\nconst x = 1;",
		},
		{
			name:    "interface up to first closing brace",
			content: "interface ApiKeyDisplay {\n  id: string;\n}\n",
			want:    "// DIVE-031: Removed ApiKeyDisplay interface\n",
		},
		{
			name:    "returned fields",
			content: "webhookEvents: WEBHOOK_EVENTS,\nwebhookEventDescriptions: WEBHOOK_EVENT_DESCRIPTIONS,",
			want:    "// DIVE-031: Removed webhookEvents\n// DIVE-031: Removed webhookEventDescriptions",
		},
		{
			name:    "inline destructuring",
			content: "const { integrations, apiKeys, webhooks, webhookEvents, webhookEventDescriptions, isPremium } = data;",
			want:    "const { integrations, isPremium } = data;",
		},
		{
			name:    "loader line without org id is kept",
			content: "const apiKeysList = await listApiKeys(orgId);",
			want:    "const apiKeysList = await listApiKeys(orgId);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripIntegrations(tt.content))
		})
	}
}

func TestStripIntegrations_ActionHandlers(t *testing.T) {
	content := readTestdata(t, "integrations.tsx")
	got := StripIntegrations(content)

	for _, gone := range []string{`"createApiKey"`, `"revokeApiKey"`, `"createWebhook"`, `"regenerateWebhookSecret"`} {
		assert.NotContains(t, got, gone)
	}

	assert.Contains(t, got, "// DIVE-031: Removed API key action handlers")
	assert.Contains(t, got, "// DIVE-031: Removed webhook action handlers")
	assert.Contains(t, got, `if (intent === "disconnect")`)
}

func TestIntegrationsRuleSet(t *testing.T) {
	set := IntegrationsRuleSet()

	assert.Equal(t, "strip", set.Name)
	require.Len(t, set.Rules, 15)
	assert.Equal(t, "webhook-event-type", set.Rules[0].Name)
	assert.Equal(t, "destructured-webhook-event-descriptions", set.Rules[len(set.Rules)-1].Name)

	_, err := NewRewriter(set)
	require.NoError(t, err)
}

func TestStripIntegrations_DestructuringUnicodeWhitespace(t *testing.T) {
	got := StripIntegrations("const { apiKeys,\u00a0\vwebhooks,\u3000data } = useLoaderData();")

	assert.Equal(t, "const { data } = useLoaderData();", got)
}
