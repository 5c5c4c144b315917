// Package factory provides a small generic registry used to instantiate modules
// from configuration. Modules are defined by a type string and a map of raw
// settings. Factories decode the settings into typed structs and return the
// concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[dataset.Source]()
//	reg.Register("file", func(conf map[string]any) (dataset.Source, error) {
//	    var c struct{ URL string `json:"url"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return source.NewFileSource(c.URL), nil
//	})
//	src, err := reg.Create(factory.ModuleConfig{Type: "file", Conf: map[string]any{"url": "rooms.csv"}})
package factory
