package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
users:
  - email: Ana@Example.com
    full_name: Ana Ruiz
    role: admin
    password: s3cretpass
  - email: luis@example.com
    full_name: Luis Mora
projects:
  - name: Web shop
    description: Customer facing store
    owner: ana@example.com
    members:
      - email: luis@example.com
        role: tester
    test_cases:
      - title: Checkout with card
        steps:
          - action: Add an item to the cart
            expected: Cart shows one item
          - action: Pay with a test card
            expected: Order confirmation is shown
        expected_result: Order is placed
        priority: high
    bugs:
      - title: Card form rejects valid numbers
        description: Visa test numbers fail validation
        reporter: luis@example.com
        assignee: ana@example.com
        severity: major
        test_case: Checkout with card
`

func TestParse(t *testing.T) {
	file, err := Parse([]byte(sampleSeed))
	require.NoError(t, err)

	require.Len(t, file.Users, 2)
	assert.Equal(t, "admin", file.Users[0].Role)
	assert.Empty(t, file.Users[1].Password)

	require.Len(t, file.Projects, 1)
	project := file.Projects[0]
	assert.Equal(t, "ana@example.com", project.Owner)
	require.Len(t, project.TestCases, 1)
	assert.Len(t, project.TestCases[0].Steps, 2)
	require.Len(t, project.Bugs, 1)
	assert.Equal(t, "Checkout with card", project.Bugs[0].TestCase)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("users:\n  - email: a@example.com\n    fullname: Typo\n"))
	assert.ErrorContains(t, err, "failed to parse seed file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "user without name",
			doc:     "users:\n  - email: a@example.com\n",
			wantErr: "users[0]: email and full_name are required",
		},
		{
			name:    "duplicate email ignores case",
			doc:     "users:\n  - email: a@example.com\n    full_name: A\n  - email: A@example.com\n    full_name: B\n",
			wantErr: "duplicate email a@example.com",
		},
		{
			name:    "unknown user role",
			doc:     "users:\n  - email: a@example.com\n    full_name: A\n    role: owner\n",
			wantErr: `invalid role "owner"`,
		},
		{
			name:    "project without owner",
			doc:     "projects:\n  - name: Web\n",
			wantErr: "projects[0]: name and owner are required",
		},
		{
			name:    "duplicate project",
			doc:     "projects:\n  - name: Web\n    owner: a@example.com\n  - name: Web\n    owner: a@example.com\n",
			wantErr: "duplicate project Web",
		},
		{
			name:    "invalid project status",
			doc:     "projects:\n  - name: Web\n    owner: a@example.com\n    status: paused\n",
			wantErr: `invalid status "paused"`,
		},
		{
			name:    "test case without steps",
			doc:     "projects:\n  - name: Web\n    owner: a@example.com\n    test_cases:\n      - title: Login\n",
			wantErr: "test cases need a title and at least one step",
		},
		{
			name:    "bug links unknown test case",
			doc:     "projects:\n  - name: Web\n    owner: a@example.com\n    bugs:\n      - title: Broken\n        description: It breaks\n        reporter: a@example.com\n        test_case: Login\n",
			wantErr: `links unknown test case "Login"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Projects, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read seed file")
}
