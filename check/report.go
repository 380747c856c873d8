package check

import (
	"encoding/json"
	"io"

	"github.com/agentuity/translator-check/sys"
	"github.com/agentuity/translator-check/translator"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/host"
	"gopkg.in/yaml.v3"
)

// Host describes the machine the check ran on.
type Host struct {
	Hostname        string `json:"hostname" yaml:"hostname"`
	OS              string `json:"os" yaml:"os"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelArch      string `json:"kernel_arch,omitempty" yaml:"kernel_arch,omitempty"`
	Container       bool   `json:"container" yaml:"container"`
}

var lookupHost = func() (*Host, error) {
	info, err := host.Info()
	if err != nil {
		return nil, err
	}
	return &Host{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelArch:      info.KernelArch,
		Container:       sys.IsRunningInsideContainer(),
	}, nil
}

// Report collects the outcomes of one run, in check order.
type Report struct {
	RunID     string
	Namespace string
	Host      *Host
	Outcomes  []Outcome
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// NewReport returns an empty report with a fresh run ID.
func NewReport() *Report {
	return &Report{
		RunID:     newRunID(),
		Namespace: translator.Namespace,
	}
}

// Add appends o to the report.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count returns how many outcomes have status s.
func (r *Report) Count(s Status) int {
	var n int
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

type outcomeDoc struct {
	ID      string `json:"id" yaml:"id"`
	Module  string `json:"module" yaml:"module"`
	Status  string `json:"status" yaml:"status"`
	Info    string `json:"info,omitempty" yaml:"info,omitempty"`
	Hint    string `json:"hint,omitempty" yaml:"hint,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed string `json:"elapsed" yaml:"elapsed"`
}

type summaryDoc struct {
	Total   int `json:"total" yaml:"total"`
	Success int `json:"success" yaml:"success"`
	Missing int `json:"missing" yaml:"missing"`
	Error   int `json:"error" yaml:"error"`
}

type reportDoc struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	Namespace string       `json:"namespace" yaml:"namespace"`
	Host      *Host        `json:"host,omitempty" yaml:"host,omitempty"`
	Packages  []outcomeDoc `json:"packages" yaml:"packages"`
	Summary   summaryDoc   `json:"summary" yaml:"summary"`
}

func (r *Report) document() reportDoc {
	doc := reportDoc{
		RunID:     r.RunID,
		Namespace: r.Namespace,
		Host:      r.Host,
		Packages:  make([]outcomeDoc, 0, len(r.Outcomes)),
		Summary: summaryDoc{
			Total:   len(r.Outcomes),
			Success: r.Count(StatusSuccess),
			Missing: r.Count(StatusMissing),
			Error:   r.Count(StatusError),
		},
	}
	for _, o := range r.Outcomes {
		entry := outcomeDoc{
			ID:      o.ID,
			Module:  o.Module,
			Status:  o.Status.String(),
			Info:    o.Info,
			Elapsed: formatElapsed(o),
		}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		}
		if o.Status == StatusMissing {
			entry.Hint = translator.InstallHint(o.ID)
		}
		doc.Packages = append(doc.Packages, entry)
	}
	return doc
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r.document())
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.document()); err != nil {
		return err
	}
	return enc.Close()
}
