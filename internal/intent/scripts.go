package intent

import "github.com/sant0-9/concierge/internal/content"

// scripts holds the hand-written answers. They depend on the locale only.
var scripts = map[ID]map[content.Locale]string{
	Services: {
		content.English: `We offer four practices: AI Optimisation, Digital Transformation, Data Analytics and Cybersecurity.
Tell me which one interests you and I will share the details.`,
		content.Spanish: `Ofrecemos cuatro áreas: Optimización con IA, Transformación Digital, Analítica de Datos y Ciberseguridad.
Dime cuál te interesa y te comparto los detalles.`,
	},
	Pricing: {
		content.English: `Every engagement is scoped to your goals, so we do not publish a fixed price list.
- Discovery sprint: a fixed-fee, two-week assessment with a written roadmap.
- Project delivery: a fixed price per phase, agreed before work starts.
- Advisory retainer: a monthly plan for ongoing guidance.
Write to hello@vanguardconsulting.io with a short description of your project and we will send a quote within two business days.`,
		content.Spanish: `Cada proyecto se dimensiona según tus objetivos, por eso no publicamos una lista de precios fija.
- Sprint de descubrimiento: una evaluación de dos semanas con tarifa fija y una hoja de ruta por escrito.
- Ejecución de proyecto: un precio fijo por fase, acordado antes de empezar.
- Asesoría continua: un plan mensual de acompañamiento.
Escríbenos a hello@vanguardconsulting.io con una breve descripción de tu proyecto y te enviaremos una cotización en dos días hábiles.`,
	},
	Security: {
		content.English: `Security is built into every engagement, not added at the end.
- Risk assessments aligned with ISO 27001.
- GDPR readiness reviews and data protection impact assessments.
- Incident response playbooks and tabletop exercises.
Client data is processed in the EU and access is limited to the consultants on your project.`,
		content.Spanish: `La seguridad forma parte de cada proyecto desde el inicio, no se añade al final.
- Evaluaciones de riesgo alineadas con ISO 27001.
- Revisiones de preparación para el RGPD y evaluaciones de impacto en protección de datos.
- Planes de respuesta a incidentes y simulacros.
Los datos de los clientes se procesan en la UE y el acceso se limita a los consultores de tu proyecto.`,
	},
	AIOptimisation: {
		content.English: `Our AI Optimisation practice finds the workflows where automation pays off.
- We start with a two-week audit and a measurable baseline.
- We design, evaluate and deploy LLM assistants and machine learning models with your team.
- We monitor quality and cost after launch.
For Norte Logistics we automated invoice matching and cut processing time by 60%.`,
		content.Spanish: `Nuestra área de Optimización con IA identifica los flujos de trabajo donde la automatización genera valor.
- Empezamos con una auditoría de dos semanas y una línea base medible.
- Diseñamos, evaluamos y desplegamos asistentes con LLM y modelos de aprendizaje automático junto a tu equipo.
- Monitoreamos la calidad y el costo después del lanzamiento.
Para Norte Logistics automatizamos la conciliación de facturas y redujimos el tiempo de proceso en un 60%.`,
	},
	DigitalTransformation: {
		content.English: `Digital transformation with us happens in quarterly increments, never as a big bang.
- Assessment of legacy systems and the processes that depend on them.
- Cloud migration plans with rollback paths for every step.
- Change management and training so your team owns the result.
Castellana Health moved its patient scheduling off a fifteen-year-old system in three phases with zero downtime.`,
		content.Spanish: `La transformación digital con nosotros avanza en incrementos trimestrales, nunca de golpe.
- Evaluación de sistemas heredados y de los procesos que dependen de ellos.
- Planes de migración a la nube con vuelta atrás en cada paso.
- Gestión del cambio y capacitación para que tu equipo se apropie del resultado.
Castellana Health migró su sistema de citas de quince años de antigüedad en tres fases y sin interrupciones.`,
	},
	DataAnalytics: {
		content.English: `We help teams trust their numbers again.
- Data warehouse design on the tools you already pay for.
- Executive dashboards with metrics defined by the people who own them.
- Forecasting models for demand, revenue and staffing.
Bluefin Retail Group now closes its monthly reporting in two days instead of nine.`,
		content.Spanish: `Ayudamos a los equipos a volver a confiar en sus números.
- Diseño de almacenes de datos sobre las herramientas que ya pagas.
- Tableros ejecutivos con métricas definidas por sus responsables.
- Modelos de pronóstico de demanda, ingresos y personal.
Bluefin Retail Group ahora cierra sus informes mensuales en dos días en lugar de nueve.`,
	},
	ClientPortal: {
		content.English: `The client portal is where registered clients follow their projects.
- Browse the demo catalog and request a guided walkthrough.
- Request meetings with your consultant.
- Send feedback on deliverables and milestones.
If you cannot sign in, write to hello@vanguardconsulting.io and we will restore your access.`,
		content.Spanish: `El portal de clientes es donde los clientes registrados siguen sus proyectos.
- Explora el catálogo de demos y solicita un recorrido guiado.
- Solicita reuniones con tu consultor.
- Envía comentarios sobre entregables e hitos.
Si no puedes iniciar sesión, escribe a hello@vanguardconsulting.io y restableceremos tu acceso.`,
	},
	CaseStudies: {
		content.English: `A few recent results:
- Norte Logistics: invoice matching automated, processing time down 60%.
- Castellana Health: scheduling platform migrated in three phases with zero downtime.
- Bluefin Retail Group: monthly reporting cut from nine days to two.
Full case studies are available on request at hello@vanguardconsulting.io.`,
		content.Spanish: `Algunos resultados recientes:
- Norte Logistics: conciliación de facturas automatizada, tiempo de proceso reducido en un 60%.
- Castellana Health: plataforma de citas migrada en tres fases sin interrupciones.
- Bluefin Retail Group: informes mensuales reducidos de nueve días a dos.
Los casos de éxito completos están disponibles bajo solicitud en hello@vanguardconsulting.io.`,
	},
	Meetings: {
		content.English: `We would be glad to talk.
- Registered clients can request a meeting from the client portal.
- New visitors can book a free 30-minute consultation by writing to hello@vanguardconsulting.io.
Let us know two or three time slots that work for you and the topic you want to cover.`,
		content.Spanish: `Nos encantará conversar.
- Los clientes registrados pueden solicitar una reunión desde el portal de clientes.
- Los nuevos visitantes pueden agendar una consulta gratuita de 30 minutos escribiendo a hello@vanguardconsulting.io.
Indícanos dos o tres horarios que te funcionen y el tema que quieres tratar.`,
	},
	Events: {
		content.English: `Upcoming events:
- Monthly webinar on practical AI adoption for operations teams (free).
- Quarterly half-day data strategy workshop in Madrid, limited to twenty seats.
See the events page for dates, or write to hello@vanguardconsulting.io to reserve a seat.`,
		content.Spanish: `Próximos eventos:
- Webinar mensual sobre adopción práctica de IA para equipos de operaciones (gratuito).
- Taller trimestral de estrategia de datos de medio día en Madrid, con veinte plazas.
Consulta la página de eventos para ver las fechas, o escribe a hello@vanguardconsulting.io para reservar tu plaza.`,
	},
	Contact: {
		content.English: `You can reach us at hello@vanguardconsulting.io or +34 910 555 120.
Our office is in Madrid, Spain.`,
		content.Spanish: `Puedes escribirnos a hello@vanguardconsulting.io o llamarnos al +34 910 555 120.
Nuestra oficina está en Madrid, España.`,
	},
	FAQ: {
		content.English: `Most engagements last six to twelve weeks, we work with companies of every size, and we deliver in English and Spanish.
Ask me anything else and I will do my best to help.`,
		content.Spanish: `La mayoría de los proyectos duran de seis a doce semanas, trabajamos con empresas de todos los tamaños y entregamos en inglés y español.
Pregúntame lo que quieras y haré lo posible por ayudarte.`,
	},
	About: {
		content.English: `Vanguard Consulting is a technology consultancy based in Madrid.
We help organisations adopt technology that measurably improves how they work.`,
		content.Spanish: `Vanguard Consulting es una consultora tecnológica con sede en Madrid.
Ayudamos a las organizaciones a adoptar tecnología que mejore de forma medible su manera de trabajar.`,
	},
}

func scriptResolver(id ID) Resolver {
	return func(locale content.Locale) string {
		return scripts[id][locale.OrDefault()]
	}
}
