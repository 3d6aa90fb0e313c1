package records

import "testing"

func TestRenderTemplate(t *testing.T) {
	rec := Record{
		CompanyName:  "Acme",
		Market:       "Downtown",
		ContactEmail: "a@acme.com",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "substitutes every occurrence",
			template: "Dear {company_name}, we love {company_name} in {market}.",
			want:     "Dear Acme, we love Acme in Downtown.",
		},
		{
			name:     "unknown field renders empty",
			template: "Hello {nope}!",
			want:     "Hello !",
		},
		{
			name:     "whitespace inside braces is tolerated",
			template: "Mail { contact_email }",
			want:     "Mail a@acme.com",
		},
		{
			name:     "no placeholders",
			template: "static text",
			want:     "static text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderTemplate(tt.template, rec); got != tt.want {
				t.Fatalf("RenderTemplate = %q, want %q", got, tt.want)
			}
		})
	}
}
