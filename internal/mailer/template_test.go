package mailer

import "testing"

func TestRender(t *testing.T) {
	vars := map[string]string{
		"student_name": "Asha Verma",
		"drive_title":  "Graduate Hiring 2026",
		"password":     "k3ptsecret",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "single token",
			template: "Hello {{student_name}}",
			want:     "Hello Asha Verma",
		},
		{
			name:     "multiple tokens",
			template: "{{student_name}} joins {{drive_title}}",
			want:     "Asha Verma joins Graduate Hiring 2026",
		},
		{
			name:     "whitespace inside braces",
			template: "Hello {{ student_name }}",
			want:     "Hello Asha Verma",
		},
		{
			name:     "unknown token passes through",
			template: "Hello {{nickname}}",
			want:     "Hello {{nickname}}",
		},
		{
			name:     "no tokens is identity",
			template: "Plain text, no substitution.",
			want:     "Plain text, no substitution.",
		},
		{
			name:     "empty template",
			template: "",
			want:     "",
		},
		{
			name:     "repeated token",
			template: "{{password}} and again {{password}}",
			want:     "k3ptsecret and again k3ptsecret",
		},
		{
			name:     "single braces ignored",
			template: "{student_name} stays",
			want:     "{student_name} stays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, vars); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDoesNotRescanValues(t *testing.T) {
	vars := map[string]string{
		"outer": "{{inner}}",
		"inner": "should not appear",
	}
	got := Render("value: {{outer}}", vars)
	if got != "value: {{inner}}" {
		t.Errorf("Render() = %q, substituted values must stay literal", got)
	}
}

func TestRenderIdempotentWithoutTokens(t *testing.T) {
	vars := map[string]string{"student_name": "Asha"}
	template := "No placeholders here."
	once := Render(template, vars)
	twice := Render(once, vars)
	if once != template || twice != once {
		t.Errorf("rendering without tokens must be the identity, got %q then %q", once, twice)
	}
}
