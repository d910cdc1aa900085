package product

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "json_number", in: `9.99`, want: 9.99},
		{name: "integer_number", in: `7`, want: 7},
		{name: "numeric_string", in: `"9.99"`, want: 9.99},
		{name: "padded_string", in: `" 12.5 "`, want: 12.5},
		{name: "empty_string_is_zero", in: `""`, want: 0},
		{name: "null_is_zero", in: `null`, want: 0},
		{name: "word", in: `"cheap"`, wantErr: true},
		{name: "trailing_garbage", in: `"9.99usd"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number

			err := json.Unmarshal([]byte(tt.in), &n)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %s", tt.in)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if float64(n) != tt.want {
				t.Fatalf("got %v, want %v", float64(n), tt.want)
			}
		})
	}
}

func TestCountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "json_number", in: `5`, want: 5},
		{name: "numeric_string", in: `"5"`, want: 5},
		{name: "empty_string_is_zero", in: `""`, want: 0},
		{name: "null_is_zero", in: `null`, want: 0},
		{name: "fractional_number", in: `5.5`, wantErr: true},
		{name: "fractional_string", in: `"5.5"`, wantErr: true},
		{name: "word", in: `"many"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count

			err := json.Unmarshal([]byte(tt.in), &c)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %s", tt.in)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if int(c) != tt.want {
				t.Fatalf("got %d, want %d", int(c), tt.want)
			}
		})
	}
}

func TestUpdateRequestFields(t *testing.T) {
	name := "Widget"
	price := Number(0)
	qty := Count(0)

	req := UpdateProductRequest{Name: &name, Price: &price, Quantity: &qty}

	if req.Empty() {
		t.Fatal("request with fields reported empty")
	}

	fields := req.Fields()

	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3: %v", len(fields), fields)
	}

	// present-but-zero values are real updates, not omissions
	if v, ok := fields["price"].(float64); !ok || v != 0 {
		t.Fatalf("price: got %v", fields["price"])
	}

	if v, ok := fields["quantity"].(int); !ok || v != 0 {
		t.Fatalf("quantity: got %v", fields["quantity"])
	}

	if fields["name"] != "Widget" {
		t.Fatalf("name: got %v", fields["name"])
	}
}

func TestUpdateRequestEmpty(t *testing.T) {
	var req UpdateProductRequest

	if !req.Empty() {
		t.Fatal("zero request should be empty")
	}
}

func TestValidID(t *testing.T) {
	if !ValidID("64a1f0c2b3d4e5f60718293a") {
		t.Fatal("well-formed hex id rejected")
	}

	for _, id := range []string{"", "123", "zza1f0c2b3d4e5f60718293a", "64a1f0c2b3d4e5f60718293"} {
		if ValidID(id) {
			t.Fatalf("malformed id %q accepted", id)
		}
	}
}
