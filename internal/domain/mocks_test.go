package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyBlockWithOrg = `vi.mocked(orgContext.requireOrgContext).mockResolvedValue({
      tenant: { id: "tenant-1", subdomain: "demo" },
      organizationId: "org-block",
    } as any);`

func TestMockRewriter_HasMarker(t *testing.T) {
	r := NewMockRewriter()

	assert.True(t, r.HasMarker(`tenant: { id: "t" }`))
	assert.True(t, r.HasMarker("tenant: {\n  id: 1 }"))
	assert.False(t, r.HasMarker(`tenant:{ id: "t" }`))
	assert.False(t, r.HasMarker("org: { id: 1 }"))
}

func TestMockRewriter_OrgIDPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		options []MockOption
		content string
		want    string
	}{
		{
			name:    "constant wins over legacy block",
			content: "const mockOrganizationId = \"org-const\";\n" + legacyBlockWithOrg,
			want:    `"org-const"`,
		},
		{
			name:    "single quoted constant keeps its quotes",
			content: "const mockOrganizationId = 'org-single';\n" + legacyBlockWithOrg,
			want:    `'org-single'`,
		},
		{
			name:    "legacy block organizationId",
			content: legacyBlockWithOrg,
			want:    `"org-block"`,
		},
		{
			name:    "default literal",
			content: "tenant: { id: \"t\" }",
			want:    `"org-uuid-123"`,
		},
		{
			name:    "configured default literal",
			options: []MockOption{WithDefaultOrgID(`"org-fallback"`)},
			content: "tenant: { id: \"t\" }",
			want:    `"org-fallback"`,
		},
		{
			name:    "blank default is ignored",
			options: []MockOption{WithDefaultOrgID("  ")},
			content: "tenant: { id: \"t\" }",
			want:    DefaultOrgID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMockRewriter(tt.options...).OrgID(tt.content))
		})
	}
}

func TestMockRewriter_Rewrite_Golden(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		golden  string
		options []MockOption
	}{
		{name: "constant org id", input: "tours.test.ts", golden: "tours.fixed.test.ts"},
		{name: "first block only", input: "bookings.test.ts", golden: "bookings.fixed.test.ts"},
		{
			name:    "every block",
			input:   "bookings.test.ts",
			golden:  "bookings.fixed-all.test.ts",
			options: []MockOption{WithReplaceAll(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMockRewriter(tt.options...).Rewrite(readTestdata(t, tt.input))
			assert.Equal(t, readTestdata(t, tt.golden), got)
		})
	}
}

func TestMockRewriter_Rewrite_EndToEnd(t *testing.T) {
	got := NewMockRewriter().Rewrite(readTestdata(t, "tours.test.ts"))

	assert.Contains(t, got, `org: { id: "org-42", name: "Test Org", slug: "test", createdAt: new Date() },`)
	assert.NotContains(t, got, "tenant: {")
	assert.NotContains(t, got, "organizationId:")
	assert.Contains(t, got, `const mockOrganizationId = "org-42";`)
}

func TestMockRewriter_Rewrite_SecondPassFixesNextBlock(t *testing.T) {
	r := NewMockRewriter()

	once := r.Rewrite(readTestdata(t, "bookings.test.ts"))
	require.True(t, r.HasMarker(once))

	twice := r.Rewrite(once)
	assert.Equal(t, readTestdata(t, "bookings.fixed-all.test.ts"), twice)
	assert.Equal(t, twice, r.Rewrite(twice))
}

func TestMockRewriter_Rewrite_LeavesContentWithoutMarker(t *testing.T) {
	content := "vi.mocked(orgContext.requireOrgContext).mockResolvedValue({ org: { id: 1 } } as any);"

	assert.Equal(t, content, NewMockRewriter().Rewrite(content))
}

func TestMockRewriter_Rewrite_MarkerWithoutLegacyBlock(t *testing.T) {
	content := "const ctx = { tenant: { id: \"t\" } };\n"

	assert.Equal(t, content, NewMockRewriter().Rewrite(content))
}

func TestRenderOrgContextMock(t *testing.T) {
	got := RenderOrgContextMock(`"org-7"`)

	assert.True(t, strings.HasPrefix(got, "vi.mocked(orgContext.requireOrgContext).mockResolvedValue({\n"))
	assert.True(t, strings.HasSuffix(got, "    } as any);"))
	assert.Contains(t, got, `org: { id: "org-7",`)
	assert.Contains(t, got, `membership: { id: "member-1", role: "owner" },`)
	assert.Contains(t, got, "subscription: null,")
}

func TestMockRuleSet(t *testing.T) {
	set := MockRuleSet()

	assert.Equal(t, "mocks", set.Name)
	require.Len(t, set.Rules, 2)
	assert.Contains(t, set.Rules[1].Replacement, "org: { id: {org_id},")

	_, err := NewRewriter(set)
	require.NoError(t, err)
}

func TestMockRewriter_UnicodeWhitespace(t *testing.T) {
	content := "vi.mocked(orgContext.requireOrgContext).mockResolvedValue({\n" +
		"      tenant: { id: \"tenant-1\" },\n" +
		"      organizationId:\v\"org-nbsp\"\u00a0,\n" +
		"    }\u2028as\u3000any);\n"

	r := NewMockRewriter()

	assert.Equal(t, `"org-nbsp"`, r.OrgID(content))
	assert.Equal(t, RenderOrgContextMock(`"org-nbsp"`)+"\n", r.Rewrite(content))
}
