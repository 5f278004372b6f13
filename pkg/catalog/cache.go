package catalog

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/api/readingplan"
	"golang.org/x/crypto/blake2b"
	"sigs.k8s.io/yaml"
)

var ErrCacheMiss = errors.New("no cached plan")

// CacheHelper stores solved plans keyed by a digest of the solver input, so
// that an unchanged catalog does not have to be enumerated again.
type CacheHelper struct {
	CacheDir string
}

func NewCacheHelper() *CacheHelper {
	return &CacheHelper{CacheDir: DefaultCacheDir()}
}

func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, "readingplan")
}

type digestInput struct {
	Books    []api.Book `json:"books"`
	Required []string   `json:"required"`
	Strategy string     `json:"strategy"`
}

// Digest identifies a solve. A nil required list (all topics) and an empty
// one (no topics) yield different digests.
func Digest(books []api.Book, required []string, strategy string) (string, error) {
	data, err := yaml.Marshal(&digestInput{Books: books, Required: required, Strategy: strategy})
	if err != nil {
		return "", fmt.Errorf("failed to serialize solver input: %v", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func (c *CacheHelper) planFile(digest string) string {
	return filepath.Join(c.CacheDir, "plans", digest+".yaml")
}

func (c *CacheHelper) WritePlan(digest string, plan *readingplan.Plan) error {
	file := c.planFile(digest)
	if err := os.MkdirAll(filepath.Dir(file), 0770); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %v", filepath.Dir(file), err)
	}
	data, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, data, 0660); err != nil {
		return fmt.Errorf("failed to write file %s: %v", file, err)
	}
	return nil
}

func (c *CacheHelper) ReadPlan(digest string) (*readingplan.Plan, error) {
	file := c.planFile(digest)
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, ErrCacheMiss
	} else if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", file, err)
	}
	plan := &readingplan.Plan{}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse cached plan %s: %v", file, err)
	}
	return plan, nil
}
