package utils

import (
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"voltshop_back_end/internal/config"
	"voltshop_back_end/internal/models"
)

// SendOrderConfirmation envoie le récapitulatif de commande par e-mail.
// L'envoi est best-effort : l'appelant journalise l'erreur sans la
// remonter au client.
func SendOrderConfirmation(cfg config.Config, to string, order *models.Order) error {
	if cfg.SMTPHost == "" {
		return nil // e-mail non configuré
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.SMTPFrom); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Confirmation de votre commande " + order.Ref)
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order *models.Order) string {
	linesHTML := ""
	for _, line := range order.Lines {
		linesHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%s</td>
				<td>%d€</td>
			</tr>`, line.Name, line.Category, line.Price)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Confirmation de commande</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Commande %s confirmée</h2>
		<p>Bonjour,</p>
		<p>Votre commande a été enregistrée avec succès.</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Catégorie</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>
				<tr>
					<td colspan="2" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">%d€</td>
				</tr>
			</tfoot>
		</table>
		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe VoltShop</strong>
		</p>
	</div>
</body>
</html>`, order.Ref, linesHTML, order.Total)
}
