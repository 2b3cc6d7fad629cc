package domain

import (
	m "codemod.dev/pkg/codemod/internal/model"
)

const (
	// DefaultStripFile is the route file that still carries the API key and
	// webhook settings.
	DefaultStripFile = "app/routes/tenant/settings/integrations.tsx"

	stripRuleSetName = "strip"
	ticketPrefix     = "// DIVE-031: "
)

// IntegrationsRuleSet returns the ordered rules that remove the API key and
// webhook code from the integrations settings route.
//
// Order matters: type declarations, loader calls and returned fields are
// replaced first, then the action handler blocks, and finally the leftover
// names in destructuring lists.
func IntegrationsRuleSet() m.RuleSet {
	return m.RuleSet{
		Name: stripRuleSetName,
		Rules: []m.Rule{
			// types
			{Name: "webhook-event-type", Pattern: `(?s)type WebhookEventType = .*?;`, Replacement: ticketPrefix + "Removed WebhookEventType"},
			{Name: "api-key-permissions", Pattern: `(?s)interface ApiKeyPermissions \{.*?\}`, Replacement: ticketPrefix + "Removed ApiKeyPermissions interface"},
			{Name: "api-key-display", Pattern: `(?s)interface ApiKeyDisplay \{.*?\}`, Replacement: ticketPrefix + "Removed ApiKeyDisplay interface"},

			// loader
			{Name: "api-keys-loader", Pattern: `const apiKeysList = await listApiKeys\(ctx\.org\.id\);`, Replacement: ticketPrefix + "Removed API keys loading"},
			{Name: "webhooks-loader", Pattern: `const webhooksList = await listWebhooks\(ctx\.org\.id\);`, Replacement: ticketPrefix + "Removed webhooks loading"},

			// loader return object
			{Name: "api-keys-field", Pattern: `apiKeys: apiKeysList,`, Replacement: ticketPrefix + "Removed apiKeys"},
			{Name: "webhooks-field", Pattern: `webhooks: webhooksList,`, Replacement: ticketPrefix + "Removed webhooks"},
			{Name: "webhook-events-field", Pattern: `webhookEvents: WEBHOOK_EVENTS,`, Replacement: ticketPrefix + "Removed webhookEvents"},
			{
				Name:        "webhook-event-descriptions-field",
				Pattern:     `webhookEventDescriptions: WEBHOOK_EVENT_DESCRIPTIONS,`,
				Replacement: ticketPrefix + "Removed webhookEventDescriptions",
			},

			// action handlers
			{
				Name:        "api-key-actions",
				Pattern:     `(?s)// API Key actions.*?if \(intent === "revokeApiKey"\) \{.*?\}`,
				Replacement: ticketPrefix + "Removed API key action handlers",
			},
			{
				Name:        "webhook-actions",
				Pattern:     `(?s)if \(intent === "createWebhook"\) \{.*?if \(intent === "regenerateWebhookSecret"\) \{.*?\}`,
				Replacement: ticketPrefix + "Removed webhook action handlers",
			},

			// destructuring in the component
			{Name: "destructured-api-keys", Pattern: `apiKeys,` + space + `*`},
			{Name: "destructured-webhooks", Pattern: `webhooks,` + space + `*`},
			{Name: "destructured-webhook-events", Pattern: `webhookEvents,` + space + `*`},
			{Name: "destructured-webhook-event-descriptions", Pattern: `webhookEventDescriptions,` + space + `*`},
		},
	}
}

var integrationsRewriter = MustRewriter(IntegrationsRuleSet())

// StripIntegrations removes the API key and webhook code from the content of
// the integrations route file.
func StripIntegrations(content string) string {
	return integrationsRewriter.Apply(content)
}
