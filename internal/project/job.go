package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fabkit/barcut/internal/model"
)

// SaveJob writes a job to a YAML file. Jobs are kept in YAML rather than
// JSON because fabricators hand-edit cut lists.
func SaveJob(path string, job model.Job) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(job)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJob reads a job from a YAML file. A job with no settings block gets
// the defaults so older files keep loading.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, err
	}

	job := model.NewJob("")
	if err := yaml.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	if job.Name == "" {
		base := filepath.Base(path)
		job.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	if len(job.Pieces) == 0 {
		return model.Job{}, fmt.Errorf("job file %s contains no pieces", path)
	}
	return job, nil
}
