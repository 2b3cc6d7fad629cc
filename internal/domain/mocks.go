package domain

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	m "codemod.dev/pkg/codemod/internal/model"
)

const (
	// DefaultMockPattern selects the integration test files to rewrite.
	DefaultMockPattern = "tests/integration/**/*.ts"
	// DefaultOrgID is used when a test file does not name its organization.
	DefaultOrgID = `"org-uuid-123"`

	mockRuleSetName      = "mocks"
	orgIDPlaceholder     = "{org_id}"
	legacyMockRuleName   = "legacy-org-context-mock"
	orgIDVarRuleName     = "org-id-variable"
	orgIDVarRuleAction   = "extract organization id"
	legacyMockPatternSrc = `(?s)vi\.mocked\(orgContext\.requireOrgContext\)\.mockResolvedValue\(\{[^}]*` +
		`tenant:` + space + `*\{[^}]+\},[^}]*` +
		`organizationId:` + space + `*(` + nonSpaceOrComma + `+),?[^}]*` +
		`\}` + space + `*as` + space + `+any\);`
	orgIDVarPatternSrc = `const mockOrganizationId = (["'][^"']+["']);`
)

// orgContextMockTemplate is the OrgContext shaped mock. The single verb
// receives the organization id literal.
const orgContextMockTemplate = `vi.mocked(orgContext.requireOrgContext).mockResolvedValue({
      org: { id: %s, name: "Test Org", slug: "test", createdAt: new Date() },
      user: { id: "user-1", email: "owner@example.com", name: "Owner" },
      session: { id: "session-1" },
      membership: { id: "member-1", role: "owner" },
      subscription: null,
      limits: {
        customers: 50, bookingsPerMonth: 100, tours: 10, teamMembers: 1,
        hasPOS: true, hasEquipmentRentals: true, hasAdvancedReports: false, hasEmailNotifications: false,
      },
      usage: { customers: 0, tours: 0, bookingsThisMonth: 0 },
      canAddCustomer: true, canAddTour: true, canAddBooking: true, isPremium: false,
    } as any);`

// Files without one of these fragments are never candidates.
var mockMarkers = []string{"tenant: { id:", "tenant: {"}

var (
	legacyMockPattern = regexp.MustCompile(legacyMockPatternSrc)
	orgIDVarPattern   = regexp.MustCompile(orgIDVarPatternSrc)
)

// MockOption configures a MockRewriter.
type MockOption func(*MockRewriter)

// WithDefaultOrgID overrides the organization id literal used as last resort.
// Blank values are ignored.
func WithDefaultOrgID(orgID string) MockOption {
	return func(r *MockRewriter) {
		if strings.TrimSpace(orgID) != "" {
			r.defaultOrgID = orgID
		}
	}
}

// WithReplaceAll makes Rewrite replace every legacy block instead of the first one.
func WithReplaceAll(replaceAll bool) MockOption {
	return func(r *MockRewriter) {
		r.replaceAll = replaceAll
	}
}

// MockRewriter turns legacy tenant mocks into OrgContext mocks.
type MockRewriter struct {
	defaultOrgID string
	replaceAll   bool
}

// NewMockRewriter creates a MockRewriter.
func NewMockRewriter(options ...MockOption) *MockRewriter {
	r := &MockRewriter{defaultOrgID: DefaultOrgID}
	for _, option := range options {
		option(r)
	}

	return r
}

// HasMarker reports whether content may contain a legacy mock.
func (r *MockRewriter) HasMarker(content string) bool {
	for _, marker := range mockMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}

	return false
}

// OrgID picks the organization id literal for content. A mockOrganizationId
// constant wins over the organizationId of the legacy block, which wins over
// the default.
func (r *MockRewriter) OrgID(content string) string {
	if match := orgIDVarPattern.FindStringSubmatch(content); match != nil {
		return match[1]
	}

	if match := legacyMockPattern.FindStringSubmatch(content); match != nil {
		return match[1]
	}

	return r.defaultOrgID
}

// Rewrite returns content with the legacy mock replaced. Content without a
// marker is returned untouched.
func (r *MockRewriter) Rewrite(content string) string {
	if !r.HasMarker(content) {
		return content
	}

	replacement := RenderOrgContextMock(r.OrgID(content))

	if r.replaceAll {
		return legacyMockPattern.ReplaceAllLiteralString(content, replacement)
	}

	loc := legacyMockPattern.FindStringIndex(content)
	if loc == nil {
		slog.Debug("marker found but no legacy mock block matched")
		return content
	}

	return content[:loc[0]] + replacement + content[loc[1]:]
}

// RenderOrgContextMock fills the OrgContext mock template with orgID.
func RenderOrgContextMock(orgID string) string {
	return fmt.Sprintf(orgContextMockTemplate, orgID)
}

// MockRuleSet describes the mock rewrite for listing purposes.
func MockRuleSet() m.RuleSet {
	return m.RuleSet{
		Name: mockRuleSetName,
		Rules: []m.Rule{
			{Name: orgIDVarRuleName, Pattern: orgIDVarPatternSrc, Replacement: orgIDVarRuleAction},
			{Name: legacyMockRuleName, Pattern: legacyMockPatternSrc, Replacement: RenderOrgContextMock(orgIDPlaceholder)},
		},
	}
}
