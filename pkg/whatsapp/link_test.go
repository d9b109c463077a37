package whatsapp

import "testing"

func TestLink(t *testing.T) {
	tests := []struct {
		name   string
		number string
		text   string
		want   string
	}{
		{"formatted number", "+504 9999-8888", "", "https://wa.me/50499998888"},
		{"message encoded", "+50499998888", "Hola! Total: $135", "https://wa.me/50499998888?text=Hola%21%20Total%3A%20%24135"},
		{"newlines kept", "+50499998888", "a\nb", "https://wa.me/50499998888?text=a%0Ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Link(tt.number, tt.text); got != tt.want {
				t.Errorf("Link() = %q, want %q", got, tt.want)
			}
		})
	}
}
