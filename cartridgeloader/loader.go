// This file is part of Gotic.
//
// Gotic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotic.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gotic/gotic/cartridge"
	"github.com/gotic/gotic/curated"
	"github.com/gotic/gotic/logger"
	"github.com/gotic/gotic/script"
)

// Error messages.
const (
	UnexpectedHash    = "cartridgeloader: unexpected hash value (%s)"
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	LoaderError       = "cartridgeloader: %v"
)

// BinaryExtension is the file extension of binary cartridges.
const BinaryExtension = ".tic"

// Loader is used to specify the cartridge to load.
type Loader struct {
	// filename or URL of the cartridge
	Filename string

	// the script language of a source file. empty for binary cartridges
	Script string

	// expected SHA-1 hash of the data. an empty string means the hash is not
	// checked. after a successful load this is the hash of the loaded data
	Hash string

	// the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The extension of the filename decides whether the data is loaded as a
// binary cartridge or as program source.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext != BinaryExtension {
		for _, cfg := range script.Configs() {
			if ext == cfg.Extension {
				cl.Script = cfg.Name
				break
			}
		}
	}

	return cl
}

// NewLoaderFromData creates a Loader with data that has already been loaded.
// The name is used in place of a filename.
func NewLoaderFromData(name string, data []byte) Loader {
	cl := NewLoader(name)
	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	return cl
}

// FileExtensions returns the list of file extensions that are recognised by
// the loader.
func FileExtensions() []string {
	exts := []string{BinaryExtension}
	for _, cfg := range script.Configs() {
		exts = append(exts, cfg.Extension)
	}
	return exts
}

// ShortName returns the filename without the path or extension.
func (cl Loader) ShortName() string {
	name := filepath.Base(cl.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsSource returns true if the data is program source rather than a binary
// cartridge.
func (cl Loader) IsSource() bool {
	return cl.Script != ""
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data. Filenames with an http or https scheme are fetched over
// the network. Everything else is treated as a local file.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, resp.Status)
		}
		data, err = io.ReadAll(resp.Body)

	case "file":
		data, err = os.ReadFile(cl.Filename)

	default:
		// a single letter scheme is a windows drive letter
		if len(scheme) == 1 {
			data, err = os.ReadFile(cl.Filename)
		} else {
			return curated.Errorf(UnsupportedScheme, scheme)
		}
	}

	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Data = data
	cl.Hash = hash

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes)", cl.ShortName(), len(data))

	return nil
}

// Cartridge loads the data if necessary and returns it as a cartridge.
func (cl *Loader) Cartridge() (*cartridge.Cartridge, error) {
	if err := cl.Load(); err != nil {
		return nil, err
	}

	if cl.IsSource() {
		cart := cartridge.NewCartridge()
		cart.Code = string(cl.Data)
		return cart, nil
	}

	return cartridge.Load(cl.Data), nil
}
