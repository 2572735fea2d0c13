package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/config"
	"github.com/leadradar/leadradar-api/internal/config/db"
	"github.com/leadradar/leadradar-api/internal/domain/event"
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/leadradar/leadradar-api/internal/domain/user"
	"github.com/leadradar/leadradar-api/internal/repository"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var seedYAML []byte

type fixture struct {
	Account struct {
		Name string `yaml:"name"`
	} `yaml:"account"`
	User struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"user"`
	Event struct {
		Name      string `yaml:"name"`
		Location  string `yaml:"location"`
		StartDate string `yaml:"startDate"`
		EndDate   string `yaml:"endDate"`
	} `yaml:"event"`
	Form struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Fields      []struct {
			Label       string `yaml:"label"`
			Type        string `yaml:"type"`
			Required    bool   `yaml:"required"`
			Placeholder string `yaml:"placeholder"`
			Options     string `yaml:"options"`
		} `yaml:"fields"`
	} `yaml:"form"`
	Lead struct {
		Values map[string]string `yaml:"values"`
	} `yaml:"lead"`
}

func main() {
	randomLeads := flag.Int("leads", 10, "number of random demo leads to generate")
	flag.Parse()

	config.LoadConfig()

	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(seedYAML, &fx); err != nil {
		log.Fatalf("Failed to parse seed fixture: %v", err)
	}

	repos := repository.NewRepositories(conn)
	services := application.New(repos, nil)

	owner, err := services.User.RegisterAccount(user.RegisterInput{
		AccountName: fx.Account.Name,
		Email:       fx.User.Email,
		Name:        fx.User.Name,
		Password:    fx.User.Password,
	})
	if err != nil {
		log.Fatalf("Failed to seed account: %v", err)
	}
	log.Printf("Seeded account %q with owner %s", fx.Account.Name, owner.Email)

	location := fx.Event.Location
	ev, err := services.Event.CreateEvent(owner.AccountID, event.CreateEventInput{
		Name:      fx.Event.Name,
		Location:  &location,
		StartDate: fx.Event.StartDate,
		EndDate:   fx.Event.EndDate,
	})
	if err != nil {
		log.Fatalf("Failed to seed event: %v", err)
	}

	description := fx.Form.Description
	f, err := services.Form.CreateForm(owner.AccountID, form.CreateFormInput{
		Name:        fx.Form.Name,
		Description: &description,
		EventID:     &ev.ID,
	})
	if err != nil {
		log.Fatalf("Failed to seed form: %v", err)
	}

	fieldIDsByLabel := make(map[string]uint, len(fx.Form.Fields))
	for _, fld := range fx.Form.Fields {
		required := ""
		if fld.Required {
			required = "on"
		}
		created, err := services.Field.AddField(owner.AccountID, form.AddFieldInput{
			FormID:      f.ID,
			Label:       fld.Label,
			Type:        fld.Type,
			Required:    required,
			Placeholder: fld.Placeholder,
			Options:     fld.Options,
		})
		if err != nil {
			log.Fatalf("Failed to seed field %q: %v", fld.Label, err)
		}
		fieldIDsByLabel[fld.Label] = created.ID
	}
	log.Printf("Seeded form %q with %d fields", f.Name, len(fx.Form.Fields))

	values := make(map[uint]string, len(fx.Lead.Values))
	for label, value := range fx.Lead.Values {
		id, ok := fieldIDsByLabel[label]
		if !ok {
			log.Fatalf("Fixture lead references unknown field %q", label)
		}
		values[id] = value
	}
	if _, err := services.Lead.SubmitLead(lead.SubmitInput{FormID: f.ID, Values: values}); err != nil {
		log.Fatalf("Failed to seed fixture lead: %v", err)
	}

	fields, err := repos.FormField.ListFieldsByForm(f.ID)
	if err != nil {
		log.Fatalf("Failed to reload form fields: %v", err)
	}

	for i := 0; i < *randomLeads; i++ {
		if _, err := services.Lead.SubmitLead(lead.SubmitInput{
			FormID: f.ID,
			Values: randomValues(fields),
		}); err != nil {
			log.Fatalf("Failed to seed random lead: %v", err)
		}
	}

	log.Printf("Seeded %d leads", *randomLeads+1)
}

func randomValues(fields []form.FormField) map[uint]string {
	values := make(map[uint]string, len(fields))
	for _, fld := range fields {
		switch fld.Type {
		case form.FieldTypeEmail:
			values[fld.ID] = strings.ToLower(gofakeit.Email())
		case form.FieldTypeSelect, form.FieldTypeRadio, form.FieldTypeMultiselect:
			opts := fld.OptionList()
			if len(opts) > 0 {
				values[fld.ID] = opts[gofakeit.Number(0, len(opts)-1)]
			}
		case form.FieldTypeNumber:
			values[fld.ID] = fmt.Sprintf("%d", gofakeit.Number(1, 500))
		case form.FieldTypeDate:
			values[fld.ID] = gofakeit.Date().Format("2006-01-02")
		case form.FieldTypeTime:
			values[fld.ID] = gofakeit.Date().Format("15:04")
		case form.FieldTypePhone:
			values[fld.ID] = "+41 79 " + gofakeit.Numerify("### ## ##")
		case form.FieldTypeTextarea:
			values[fld.ID] = gofakeit.Sentence(8)
		default:
			values[fld.ID] = gofakeit.FirstName()
		}
	}
	return values
}
