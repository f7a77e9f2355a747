package convert

import (
	"io"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"

	"github.com/goccy/go-yaml"
)

// ToYAML writes n as a YAML document. Dictionaries keep their sorted key
// order; byte strings that are not text are written as 0x hex strings.
func ToYAML(n *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(n))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(n *ir.Node) any {
	switch n.Type {
	case ir.IntegerType:
		return n.Int
	case ir.BytesType:
		return textValue(n.Bytes)
	case ir.ListType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = yamlValue(v)
		}
		return res
	}
	order := encode.EntryOrder(n, true)
	res := make(yaml.MapSlice, 0, len(order))
	for _, k := range order {
		res = append(res, yaml.MapItem{
			Key:   textValue(n.Fields[k].Bytes),
			Value: yamlValue(n.Values[k]),
		})
	}
	return res
}
