package json

import (
	"math"
	"testing"
)

func TestEncoder(t *testing.T) {
	encoder := NewEncoder()
	object := encoder.Object()

	list := object.Key("QueueIds").Array()
	list.Value().String("q-1")
	list.Value().String("q-2")
	list.Close()

	object.Key("MaxContacts").Integer(10)
	object.Key("FileSizeInBytes").Long(1 << 40)
	object.Key("Weight").Double(2.5)
	object.Key("ProficiencyLevel").Float(3)
	object.Key("Locked").Boolean(true)
	object.Key("Content").Base64EncodeBytes([]byte("hello"))
	object.Key("Nothing").Null()

	tags := object.Key("Tags").Object()
	tags.Key("team").String("support")
	tags.Close()

	object.Close()

	expect := `{"QueueIds":["q-1","q-2"],"MaxContacts":10,"FileSizeInBytes":1099511627776,"Weight":2.5,"ProficiencyLevel":3,"Locked":true,"Content":"aGVsbG8=","Nothing":null,"Tags":{"team":"support"}}`
	if e, a := expect, encoder.String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestEncoderFloats(t *testing.T) {
	cases := map[string]struct {
		value  float64
		expect string
	}{
		"nan":          {value: math.NaN(), expect: `"NaN"`},
		"inf":          {value: math.Inf(1), expect: `"Infinity"`},
		"neg inf":      {value: math.Inf(-1), expect: `"-Infinity"`},
		"zero":         {value: 0, expect: `0`},
		"fraction":     {value: 0.125, expect: `0.125`},
		"large":        {value: 1e21, expect: `1e+21`},
		"small":        {value: 1e-7, expect: `1e-07`},
		"epoch millis": {value: 1515531081.123, expect: `1515531081.123`},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			encoder := NewEncoder()
			encoder.Double(c.value)
			if e, a := c.expect, encoder.String(); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestEncoderNilBlob(t *testing.T) {
	encoder := NewEncoder()
	encoder.Base64EncodeBytes(nil)
	if e, a := "null", encoder.String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}
