package zupos

import (
	_ "embed"

	"github.com/pkg/errors"

	"zupos/drawer"
	nt "zupos/entity"
	"zupos/grid"
	"zupos/pagination"
	"zupos/toast"
	"zupos/util"
)

// SampleConfig is written out on first run.
//
//go:embed config.sample.yaml
var SampleConfig []byte

// Config is the screen configuration, read from yaml over Defaults.
type Config struct {
	Grid       grid.Config       `yaml:"grid"`
	Pagination pagination.Config `yaml:"pagination"`
	Breakpoint int               `yaml:"breakpoint"`
	Toast      toast.Config      `yaml:"toast"`
	Drawer     drawer.Config     `yaml:"drawer"`
	Fields     []drawer.Field    `yaml:"fields"`
	Columns    []nt.Column       `yaml:"columns"`
	Filters    []nt.Filter       `yaml:"filters,omitempty"`
	Sort       nt.Sort           `yaml:"sort,omitempty"`
	Seed       string            `yaml:"seed"`
	LogFile    string            `yaml:"logFile"`
}

// TransferTypes are the stock transfer kinds a store can use.
var TransferTypes = []string{"Sayim", "Devir"}

// Defaults returns the configuration used for anything not set in yaml.
func Defaults() Config {
	return Config{
		Grid: grid.Config{
			Empty: grid.Empty{
				Message:     "No stores found",
				Description: "Try another search or clear the filters",
				Icon:        "∅",
			},
			SkeletonRows: 5,
		},
		Pagination: pagination.Config{PageSize: 10, SizeOptions: pagination.DefaultSizeOptions},
		Breakpoint: 100,
		Drawer: drawer.Config{
			Title:              "New store",
			EditTitle:          "Edit store",
			Subtitle:           "Store definition",
			SubmitLabel:        "Save",
			ResetLabel:         "Reset",
			CancelLabel:        "Cancel",
			ShowUnsavedWarning: true,
			Width:              52,
		},
		Fields: []drawer.Field{
			{Name: "name", Label: "Name", Kind: drawer.Text, MaxLength: 60},
			{Name: "code", Label: "Code", Kind: drawer.Text, MaxLength: 10},
			{Name: "transferType", Label: "Transfer type", Kind: drawer.Choice, Options: TransferTypes},
			{Name: "status", Label: "Active", Kind: drawer.Check},
		},
		Columns: []nt.Column{
			{Id: "id", Label: "ID", Field: "id", Kind: nt.Number, Width: 4, Align: nt.Right, Sortable: true, Priority: 4},
			{Id: "code", Label: "Code", Field: "code", Width: 6, Sortable: true, Priority: 2},
			{Id: "name", Label: "Name", Field: "name", Width: 20, Sortable: true, Filterable: true, Priority: 1},
			{Id: "transferType", Label: "Transfer", Field: "transferType", Kind: nt.Enum, Width: 8, Sortable: true, Filterable: true, Priority: 3},
			{Id: "address", Label: "Address", Field: "address", Width: 24, HideOnMobile: true},
			{Id: "gsm", Label: "GSM", Field: "gsm", Width: 12, HideOnMobile: true},
			{Id: "status", Label: "Status", Field: "status", Kind: nt.Bool, Align: nt.Center, Sortable: true, Filterable: true, Priority: 5},
		},
		Seed:    "testdata/stores.ndjson",
		LogFile: "zupos.log",
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (cfg Config, err error) {

	cfg = Defaults()
	err = util.LoadConfig(&cfg, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to load config")
	}
	return
}
