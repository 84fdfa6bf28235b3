package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestBudgetRequest_ToInput(t *testing.T) {
	var r BudgetRequest
	body := `{"dataOrcamento":"2024-05-02","clienteId":"c-1","veiculoId":"v-1","km":42000,
		"descricao":"revisão","servicos":["S0001"],"pecas":[{"nome":"Filtro","valor":"50.00"}],"valorOrcamento":999}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientID != "c-1" || in.VehicleID != "v-1" || in.Odometer != 42000 {
		t.Fatalf("unexpected references: %+v", in)
	}
	if !in.QuoteDate.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected quote date %v", in.QuoteDate)
	}
	if len(in.Parts) != 1 || in.Parts[0].Name != "Filtro" || !in.Parts[0].Value.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected parts: %+v", in.Parts)
	}
	if in.TotalValue == nil || !in.TotalValue.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("expected supplied total to be carried, got %v", in.TotalValue)
	}
}

func TestBudgetRequest_QuoteDateFormats(t *testing.T) {
	in, err := BudgetRequest{DataOrcamento: "2024-05-02T13:30:00-03:00"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.QuoteDate.Hour() != 16 || in.QuoteDate.Location() != time.UTC {
		t.Fatalf("expected UTC conversion, got %v", in.QuoteDate)
	}

	in, err = BudgetRequest{}.ToInput()
	if err != nil || !in.QuoteDate.IsZero() {
		t.Fatalf("empty date must stay zero, got %v err=%v", in.QuoteDate, err)
	}

	_, err = BudgetRequest{DataOrcamento: "02/05/2024"}.ToInput()
	if !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderCostsRequest_Values(t *testing.T) {
	var r OrderCostsRequest
	if err := json.Unmarshal([]byte(`{"custoMaoDeObra":200.5}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	parts, labor := r.Values()
	if !parts.IsZero() {
		t.Fatalf("absent parts cost must be zero, got %s", parts)
	}
	if !labor.Equal(decimal.RequireFromString("200.5")) {
		t.Fatalf("unexpected labor %s", labor)
	}
}

func TestOpenOrderRequest_ToInput(t *testing.T) {
	in := OpenOrderRequest{ClienteID: "c", VeiculoID: "v", Km: 10, Combustivel: "1/2", OrcamentoID: "b-1"}.ToInput()
	if in.SeedBudgetID != "b-1" || in.FuelLevel != "1/2" || in.Odometer != 10 {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestPartyRequests_ToEntity(t *testing.T) {
	c := ClientRequest{Nome: "Maria Silva", Email: "maria@x.com", Telefone: "11", Endereco: "Rua A", CpfCnpj: "123.456.789-01"}.ToEntity()
	if c.Name != "Maria Silva" || c.Phone != "11" || c.Address != "Rua A" || c.TaxID != "123.456.789-01" {
		t.Fatalf("unexpected client %+v", c)
	}

	v := VehicleRequest{Marca: "Fiat", Modelo: "Uno", Ano: 2010, Placa: "ABC1234", ClienteID: " c-1 "}.ToEntity()
	if v.Make != "Fiat" || v.Model != "Uno" || v.Year != 2010 || v.Plate != "ABC1234" || v.ClientID != "c-1" {
		t.Fatalf("unexpected vehicle %+v", v)
	}

	s := ServiceRequest{Nome: "Troca de óleo", Preco: decimal.NewFromInt(100), Categoria: "Motor"}.ToEntity()
	if s.Name != "Troca de óleo" || !s.Price.Equal(decimal.NewFromInt(100)) || s.Category != "Motor" {
		t.Fatalf("unexpected service %+v", s)
	}

	ci := CompanyInfoRequest{Nome: "Oficina XPTO", Cnpj: "12345678000199"}.ToEntity()
	if ci.Name != "Oficina XPTO" || ci.TaxID != "12345678000199" {
		t.Fatalf("unexpected company %+v", ci)
	}
}

func TestMPPayloadFromBody(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "empty body", body: "  ", want: "{}"},
		{name: "bare payload", body: `{"payment_method_id":"pix"}`, want: `{"payment_method_id":"pix"}`},
		{name: "envelope", body: `{"mp_payload":{"payment_method_id":"pix"}}`, want: `{"payment_method_id":"pix"}`},
		{name: "null envelope", body: `{"mp_payload":null}`, wantErr: true},
		{name: "broken json", body: `{`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MPPayloadFromBody([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
