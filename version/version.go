// Package version checks whether a newer release has been published.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/filesystem"
	"github.com/vidsel/vidsel/network"
	"github.com/vidsel/vidsel/util"
	"github.com/vidsel/vidsel/where"
)

// releaseTTL keeps the lookup well under the unauthenticated API rate limit.
const releaseTTL = 48 * time.Hour

var releasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var (
	cacherOnce    sync.Once
	versionCacher *gache.Cache[string]
)

func cacher() *gache.Cache[string] {
	cacherOnce.Do(func() {
		versionCacher = filesystem.Store[string](filepath.Join(where.Cache(), "version.json"), releaseTTL)
	})
	return versionCacher
}

// Latest returns the newest released version without the "v" prefix.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := cacher().Get()
	if err == nil && !expired && ver != "" {
		return ver, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.New().Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(ver)
	return ver, nil
}
