package campaign

import (
	"errors"
	"testing"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

type fakeSender struct {
	sent   []string
	failOn map[string]bool
}

func (f *fakeSender) Send(toPhone, body string) error {
	if f.failOn[toPhone] {
		return errors.New("delivery failed")
	}
	f.sent = append(f.sent, toPhone)
	return nil
}

func newTestSetup(t *testing.T, sender *fakeSender) (*Service, *client.Service) {
	t.Helper()
	store := storage.NewMemoryStore()
	clientService := client.NewService(client.NewRepository(store))
	svc := NewService(NewRepository(store), clientService, sender)
	return svc, clientService
}

func TestSendMessagesAudienceAndLogsInteractions(t *testing.T) {
	sender := &fakeSender{}
	svc, clients := newTestSetup(t, sender)

	buyer, _ := clients.Create(&client.CreateClientRequest{Name: "Buyer", Phone: "+21261", Role: client.RoleBuyer})
	tenant, _ := clients.Create(&client.CreateClientRequest{Name: "Tenant", Phone: "+21262", Role: client.RoleTenant})
	owner, _ := clients.Create(&client.CreateClientRequest{Name: "Owner", Phone: "+21263", Role: client.RoleOwner})
	_ = tenant
	_ = owner

	c := svc.Create(&CreateCampaignRequest{
		Name:     "New listings",
		Message:  "Fresh apartments this week",
		Audience: client.Filter{Role: client.RoleBuyer},
	})

	result, err := svc.Send(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Recipients != 1 || result.Sent != 1 || result.Failed != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Campaign.Status != StatusSent {
		t.Fatalf("got status %q, want sent", result.Campaign.Status)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "+21261" {
		t.Fatalf("sent to %v, want the buyer only", sender.sent)
	}

	got, _ := clients.Get(buyer.ID)
	if len(got.Interactions) != 1 {
		t.Fatalf("got %d interactions, want 1", len(got.Interactions))
	}
	in := got.Interactions[0]
	if in.Type != client.InteractionWhatsApp {
		t.Fatalf("got interaction type %q, want whatsapp", in.Type)
	}
	if in.Notes != "campaign: New listings" {
		t.Fatalf("got notes %q", in.Notes)
	}
}

func TestSendCountsFailures(t *testing.T) {
	sender := &fakeSender{failOn: map[string]bool{"+2": true}}
	svc, clients := newTestSetup(t, sender)

	ok, _ := clients.Create(&client.CreateClientRequest{Name: "A", Phone: "+1", Role: client.RoleBuyer})
	if _, err := clients.Create(&client.CreateClientRequest{Name: "B", Phone: "+2", Role: client.RoleBuyer}); err != nil {
		t.Fatal(err)
	}

	c := svc.Create(&CreateCampaignRequest{Name: "Mixed", Message: "hi", Audience: client.Filter{}})
	result, err := svc.Send(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Sent != 1 || result.Failed != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Campaign.Status != StatusSent {
		t.Fatalf("partial delivery should still end as sent, got %q", result.Campaign.Status)
	}

	// Only the delivered recipient gets an interaction.
	got, _ := clients.Get(ok.ID)
	if len(got.Interactions) != 1 {
		t.Fatal("delivered recipient missing interaction")
	}
}

func TestSendAllFailedMarksCampaignFailed(t *testing.T) {
	sender := &fakeSender{failOn: map[string]bool{"+1": true}}
	svc, clients := newTestSetup(t, sender)

	if _, err := clients.Create(&client.CreateClientRequest{Name: "A", Phone: "+1", Role: client.RoleBuyer}); err != nil {
		t.Fatal(err)
	}

	c := svc.Create(&CreateCampaignRequest{Name: "Doomed", Message: "hi", Audience: client.Filter{}})
	result, err := svc.Send(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Campaign.Status != StatusFailed {
		t.Fatalf("got status %q, want failed", result.Campaign.Status)
	}
}

func TestSendTwiceRejected(t *testing.T) {
	sender := &fakeSender{}
	svc, clients := newTestSetup(t, sender)

	if _, err := clients.Create(&client.CreateClientRequest{Name: "A", Phone: "+1", Role: client.RoleBuyer}); err != nil {
		t.Fatal(err)
	}

	c := svc.Create(&CreateCampaignRequest{Name: "Once", Message: "hi", Audience: client.Filter{}})
	if _, err := svc.Send(c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Send(c.ID); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("got %v, want ErrAlreadySent", err)
	}
}

func TestUpdateSentCampaignRejected(t *testing.T) {
	sender := &fakeSender{}
	svc, clients := newTestSetup(t, sender)

	if _, err := clients.Create(&client.CreateClientRequest{Name: "A", Phone: "+1", Role: client.RoleBuyer}); err != nil {
		t.Fatal(err)
	}

	c := svc.Create(&CreateCampaignRequest{Name: "Done", Message: "hi", Audience: client.Filter{}})
	if _, err := svc.Send(c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Update(c.ID, &UpdateCampaignRequest{Name: "Renamed"}); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("got %v, want ErrAlreadySent", err)
	}
}

func TestPreviewDoesNotSend(t *testing.T) {
	sender := &fakeSender{}
	svc, clients := newTestSetup(t, sender)

	if _, err := clients.Create(&client.CreateClientRequest{Name: "A", Phone: "+1", Role: client.RoleBuyer}); err != nil {
		t.Fatal(err)
	}

	c := svc.Create(&CreateCampaignRequest{Name: "Preview", Message: "hi", Audience: client.Filter{}})
	audience, err := svc.Preview(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(audience) != 1 {
		t.Fatalf("got %d recipients, want 1", len(audience))
	}
	if len(sender.sent) != 0 {
		t.Fatal("preview must not send messages")
	}

	got, _ := svc.Get(c.ID)
	if got.Status != StatusDraft {
		t.Fatalf("preview changed status to %q", got.Status)
	}
}
