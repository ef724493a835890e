package grpcserver

import (
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/domain/amount"
)

func paymentMethodFromWire(w PaymentMethodWire) domain.PaymentMethodData {
	switch w.Kind {
	case "token":
		return domain.PaymentMethodData{Kind: domain.PaymentMethodToken, Token: w.Token}
	case "mandate":
		return domain.PaymentMethodData{Kind: domain.PaymentMethodMandate, MandateID: w.MandateID}
	default:
		var card domain.Card
		if w.Card != nil {
			card = domain.Card{
				Number:   domain.NewRedacted(w.Card.Number),
				ExpMonth: w.Card.ExpMonth,
				ExpYear:  w.Card.ExpYear,
				CVC:      domain.NewRedacted(w.Card.CVC),
			}
		}
		return domain.PaymentMethodData{Kind: domain.PaymentMethodCard, Card: card}
	}
}

func customerAcceptanceFromWire(w *CustomerAcceptanceWire) *domain.CustomerAcceptance {
	if w == nil {
		return nil
	}
	return &domain.CustomerAcceptance{
		AcceptanceType: w.AcceptanceType,
		IPAddress:      w.IPAddress,
		UserAgent:      w.UserAgent,
	}
}

func captureMethodFromWire(s string) domain.CaptureMethod {
	if domain.CaptureMethod(s) == domain.CaptureManual {
		return domain.CaptureManual
	}
	return domain.CaptureAutomatic
}

func redirectionDataToWire(r *domain.RedirectionData) *RedirectionDataWire {
	if r == nil {
		return nil
	}
	return &RedirectionDataWire{
		URL:        r.URL,
		Method:     r.Method,
		FormFields: r.FormFields,
		RawHTML:    r.RawHTML,
	}
}

func errorToWire(e *domain.ErrorResponse) *ErrorWire {
	if e == nil {
		return nil
	}
	return &ErrorWire{
		Code:          e.Code,
		Message:       e.Message,
		Reason:        e.Reason,
		StatusCode:    e.StatusCode,
		AttemptStatus: string(e.AttemptStatus),
	}
}

func paymentResponseToWire(res domain.Result[domain.PaymentsResponseData]) PaymentResponse {
	if res.Success != nil {
		s := res.Success
		return PaymentResponse{
			ResourceID:             s.ResourceID.String(),
			Status:                 string(s.Status),
			RedirectionData:        redirectionDataToWire(s.RedirectionData),
			MandateReference:       s.MandateReference,
			ResponseRefID:          s.ConnectorResponseReferenceID,
			IncrementalAuthAllowed: s.IncrementalAuthorizationAllowed,
		}
	}
	return PaymentResponse{Error: errorToWire(res.Error)}
}

func refundResponseToWire(res domain.Result[domain.RefundsResponseData]) RefundResponse {
	if res.Success != nil {
		return RefundResponse{
			ConnectorRefundID: res.Success.ConnectorRefundID,
			RefundStatus:      string(res.Success.Status),
		}
	}
	return RefundResponse{Error: errorToWire(res.Error)}
}

func disputeResponseToAcceptWire(res domain.Result[domain.DisputeResponseData]) AcceptDisputeResponse {
	if res.Success != nil {
		return AcceptDisputeResponse{
			ConnectorDisputeID: res.Success.ConnectorDisputeID,
			DisputeStatus:      string(res.Success.Status),
		}
	}
	return AcceptDisputeResponse{Error: errorToWire(res.Error)}
}

func evidenceFromWire(items []EvidenceWire) []domain.EvidenceDoc {
	out := make([]domain.EvidenceDoc, 0, len(items))
	for _, it := range items {
		kind := domain.EvidenceText
		if it.Kind == "file" {
			kind = domain.EvidenceFile
		}
		out = append(out, domain.EvidenceDoc{
			Kind:     kind,
			Field:    it.Field,
			Text:     it.Text,
			FileName: it.FileName,
			FileData: it.FileData,
			MIMEType: it.MIMEType,
		})
	}
	return out
}

func amountMinor(i int64) amount.Minor { return amount.Minor(i) }

func webhookContentToWire(c domain.WebhookContent) *WebhookContentWire {
	switch c.Kind {
	case domain.WebhookContentPayment:
		p := paymentResponseToWire(domain.Ok(c.Payment))
		return &WebhookContentWire{Kind: "payment", Payment: &p}
	case domain.WebhookContentRefund:
		r := refundResponseToWire(domain.Ok(c.Refund))
		return &WebhookContentWire{Kind: "refund", Refund: &r}
	case domain.WebhookContentDispute:
		d := AcceptDisputeResponse{ConnectorDisputeID: c.Dispute.ConnectorDisputeID, DisputeStatus: string(c.Dispute.Status)}
		return &WebhookContentWire{Kind: "dispute", Dispute: &d}
	default:
		return &WebhookContentWire{Kind: "none"}
	}
}
