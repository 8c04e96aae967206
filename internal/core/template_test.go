package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stampValues = map[string]string{
	"sha":      "0123456789abcdef0123456789abcdef01234567",
	"is_dirty": "false",
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "both placeholders",
			template: "build={sha} dirty={is_dirty}",
			want:     "build=0123456789abcdef0123456789abcdef01234567 dirty=false",
		},
		{
			name:     "repeated placeholder",
			template: "{sha}/{sha}",
			want:     "0123456789abcdef0123456789abcdef01234567/0123456789abcdef0123456789abcdef01234567",
		},
		{
			name:     "no placeholders",
			template: "static text\nwith two lines\n",
			want:     "static text\nwith two lines\n",
		},
		{
			name:     "empty template",
			template: "",
			want:     "",
		},
		{
			name:     "escaped braces",
			template: "json: {{\"sha\": \"{sha}\"}}",
			want:     "json: {\"sha\": \"0123456789abcdef0123456789abcdef01234567\"}",
		},
		{
			name:     "only escapes",
			template: "{{}}",
			want:     "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.template, stampValues)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		reason   string
	}{
		{
			name:     "unknown placeholder",
			template: "branch={branch}",
			reason:   "unknown placeholder {branch}",
		},
		{
			name:     "unclosed placeholder",
			template: "sha={sha",
			reason:   "unclosed placeholder",
		},
		{
			name:     "lone closing brace",
			template: "oops}",
			reason:   "single '}' outside a placeholder",
		},
		{
			name:     "empty placeholder",
			template: "{}",
			reason:   "malformed placeholder {}",
		},
		{
			name:     "name starting with digit",
			template: "{1sha}",
			reason:   "malformed placeholder {1sha}",
		},
		{
			name:     "name with space",
			template: "{is dirty}",
			reason:   "malformed placeholder {is dirty}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandTemplate(tt.template, stampValues)
			require.Error(t, err)

			var terr *TemplateError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tt.reason, terr.Reason)
		})
	}
}

func TestExpandTemplate_ErrorOffset(t *testing.T) {
	_, err := ExpandTemplate("ok {branch}", stampValues)
	require.Error(t, err)

	var terr *TemplateError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, 3, terr.Offset)
}
