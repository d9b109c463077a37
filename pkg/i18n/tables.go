package i18n

var en = map[string]string{
	"nav.home":           "Home",
	"nav.services":       "Tours",
	"nav.gallery":        "Gallery",
	"nav.contact":        "Contact",
	"nav.private_tours":  "Private Tours",
	"nav.policy":         "Cancellation Policy",
	"hero.title":         "Discover Roatán",
	"hero.subtitle":      "Boat and adventure tours around the Bay Islands",
	"booking.title":      "Book your tour",
	"booking.step1":      "Tour, date and people",
	"booking.step2":      "Contact information",
	"booking.step3":      "Review and send",
	"booking.greeting":   "Hello! I would like to book a tour.",
	"booking.tour":       "Tour",
	"booking.date":       "Date",
	"booking.people":     "People",
	"booking.total":      "Total",
	"booking.name":       "Name",
	"booking.email":      "Email",
	"booking.phone":      "Phone",
	"booking.requests":   "Special requests",
	"booking.send":       "Send via WhatsApp",
	"private.confirmed":  "Thank you! Your private tour request was received.",
	"private.pending":    "We will contact you shortly to confirm availability.",
	"contact.title":      "Contact us",
	"contact.whatsapp":   "Chat with us on WhatsApp",
	"gallery.empty":      "No photos yet",
	"tours.empty":        "No tours available right now",
	"policy.title":       "Cancellation Policy",
	"auth.invalid":       "Invalid credentials",
	"error.load":         "We could not load this content",
	"validation.require": "This field is required",
	"policy.body": `## Cancellation Policy

- Cancellations made **48 hours** or more before the tour receive a full refund.
- Cancellations made between 24 and 48 hours before the tour receive a 50% refund.
- Cancellations made less than 24 hours before the tour are not refundable.
- Tours cancelled by us because of weather are fully refunded or rescheduled.

Please contact us on WhatsApp to change or cancel your booking.`,
}

var es = map[string]string{
	"nav.home":           "Inicio",
	"nav.services":       "Tours",
	"nav.gallery":        "Galería",
	"nav.contact":        "Contacto",
	"nav.private_tours":  "Tours Privados",
	"nav.policy":         "Política de Cancelación",
	"hero.title":         "Descubre Roatán",
	"hero.subtitle":      "Tours en bote y aventuras por las Islas de la Bahía",
	"booking.title":      "Reserva tu tour",
	"booking.step1":      "Tour, fecha y personas",
	"booking.step2":      "Información de contacto",
	"booking.step3":      "Revisar y enviar",
	"booking.greeting":   "¡Hola! Me gustaría reservar un tour.",
	"booking.tour":       "Tour",
	"booking.date":       "Fecha",
	"booking.people":     "Personas",
	"booking.total":      "Total",
	"booking.name":       "Nombre",
	"booking.email":      "Correo",
	"booking.phone":      "Teléfono",
	"booking.requests":   "Solicitudes especiales",
	"booking.send":       "Enviar por WhatsApp",
	"private.confirmed":  "¡Gracias! Recibimos tu solicitud de tour privado.",
	"private.pending":    "Te contactaremos pronto para confirmar la disponibilidad.",
	"contact.title":      "Contáctanos",
	"contact.whatsapp":   "Escríbenos por WhatsApp",
	"gallery.empty":      "Aún no hay fotos",
	"tours.empty":        "No hay tours disponibles por ahora",
	"policy.title":       "Política de Cancelación",
	"auth.invalid":       "Credenciales inválidas",
	"error.load":         "No pudimos cargar este contenido",
	"validation.require": "Este campo es obligatorio",
	"policy.body": `## Política de Cancelación

- Las cancelaciones realizadas con **48 horas** o más de anticipación reciben reembolso completo.
- Las cancelaciones entre 24 y 48 horas antes del tour reciben un reembolso del 50%.
- Las cancelaciones con menos de 24 horas de anticipación no son reembolsables.
- Los tours cancelados por nosotros debido al clima se reembolsan por completo o se reprograman.

Contáctanos por WhatsApp para cambiar o cancelar tu reserva.`,
}
