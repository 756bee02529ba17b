package connection

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Unmarshal parses proto3 bytes into m. Unknown fields are skipped,
// repeated occurrences of a scalar keep the last value, per proto3 rules.
func (m *RawMsgConnectionOpenInit) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("malformed tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == msgFieldClientID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("client_id: %w", protowire.ParseError(n))
			}
			m.ClientID = v
			data = data[n:]
		case num == msgFieldCounterparty && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("counterparty: %w", protowire.ParseError(n))
			}
			cpty := new(RawCounterparty)
			if err := cpty.Unmarshal(v); err != nil {
				return fmt.Errorf("counterparty: %w", err)
			}
			m.Counterparty = cpty
			data = data[n:]
		case num == msgFieldVersion && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("version: %w", protowire.ParseError(n))
			}
			version := new(RawVersion)
			if err := version.Unmarshal(v); err != nil {
				return fmt.Errorf("version: %w", err)
			}
			m.Version = version
			data = data[n:]
		case num == msgFieldDelayPeriod && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("delay_period: %w", protowire.ParseError(n))
			}
			m.DelayPeriod = v
			data = data[n:]
		case num == msgFieldSigner && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("signer: %w", protowire.ParseError(n))
			}
			m.Signer = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

func (c *RawCounterparty) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("malformed tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == cptyFieldClientID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("client_id: %w", protowire.ParseError(n))
			}
			c.ClientID = v
			data = data[n:]
		case num == cptyFieldConnectionID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("connection_id: %w", protowire.ParseError(n))
			}
			c.ConnectionID = v
			data = data[n:]
		case num == cptyFieldPrefix && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("prefix: %w", protowire.ParseError(n))
			}
			prefix := new(RawMerklePrefix)
			if err := prefix.Unmarshal(v); err != nil {
				return fmt.Errorf("prefix: %w", err)
			}
			c.Prefix = prefix
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

func (p *RawMerklePrefix) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("malformed tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == prefixFieldKeyPrefix && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("key_prefix: %w", protowire.ParseError(n))
			}
			p.KeyPrefix = append([]byte(nil), v...)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

func (v *RawVersion) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("malformed tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == versionFieldIdentifier && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("identifier: %w", protowire.ParseError(n))
			}
			v.Identifier = s
			data = data[n:]
		case num == versionFieldFeatures && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("features: %w", protowire.ParseError(n))
			}
			v.Features = append(v.Features, s)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}
