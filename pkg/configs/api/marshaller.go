package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// load api server config from a file.
//
// args:
//   - filepath: filepath refers a config file.
//
// returns *ApiConfig, error:
//
//	When loading success, returns `(*ApiConfig, nil)`.
//	Otherwise, returns `(nil, error)`.
func LoadApiConfig(filepath string) (*ApiConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

// Unmarshal parses yaml and seals it.
//
// Misconfigurations are reported as error.
func Unmarshal(conf []byte) (out *ApiConfig, err error) {
	var _out *ApiConfigMarshall
	if err := yaml.Unmarshal(conf, &_out); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("misconfiguration: %v", r)
		}
	}()
	out = TrySeal(_out)
	return out, nil
}
