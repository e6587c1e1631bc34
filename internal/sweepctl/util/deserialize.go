package util

import (
	"os"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/yaml"
)

func BindJsonOrYaml(fileName string, obj interface{}) error {
	reader, err := os.Open(fileName)
	if err != nil {
		return errors.Wrapf(err, "error opening file %s", fileName)
	}
	defer reader.Close()
	if err := yaml.NewYAMLOrJSONDecoder(reader, 128).Decode(obj); err != nil {
		return errors.Wrapf(err, "error unmarshalling file %s", fileName)
	}
	return nil
}
