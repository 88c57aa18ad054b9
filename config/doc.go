// Package config loads typed configuration structures through a fern.Env.
//
// The package uses an interface-based design with three extension points:
//   - Loader: reads fields from the Env (required)
//   - Defaulter: fills values that are still zero after loading
//   - Validator: checks the result
//
// Provider chains them and returns an Fx-friendly constructor:
//
//	type APIConfig struct {
//	    Timeout int
//	    BaseURL string
//	}
//
//	func (c *APIConfig) Load(env *fern.Env) error {
//	    var err error
//
//	    c.Timeout, err = env.Integer(fern.Key("API_TIMEOUT"), fern.Default(30))
//	    if err != nil {
//	        return err
//	    }
//
//	    c.BaseURL, err = env.String(fern.Key("API_BASE_URL"))
//
//	    return err
//	}
//
//	cfg, err := config.Provider(&APIConfig{})(env)
package config
