package examples

import (
	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/internal/prompt"
)

const templateFlag = "Formato y diseño: El CV parece no seguir el estilo recomendado para Estados Unidos (como Latex o un generador similar), lo que puede restarle profesionalismo. Usá el [template de silver.dev](" + prompt.TypstTemplateURL + ")."

const templateFlagTypst = "Formato y diseño: El CV no sigue las recomendaciones para empresas en Estados Unidos. Se recomienda usar un template como el de [silver.dev](" + prompt.TypstTemplateURL + ") en Typst para un estilo Latex."

// Base gold records, one per letter grade. Ordering matters: the grades are
// presented ascending-then-mixed to anchor the engine's calibration.

var goldS = domain.GradeResult{
	Grade:       domain.GradeS,
	RedFlags:    []string{},
	YellowFlags: []string{},
}

var goldA = domain.GradeResult{
	Grade: domain.GradeA,
	YellowFlags: []string{
		"Incluir tecnologías en el título o subtítulo del CV, lo que hace que parezca relleno.",
		"Usar un correo en Hotmail, proyecta una imagen anticuada.",
		"Incluir el domicilio completo en el CV; basta con mencionar ciudad y país si es relevante.",
		templateFlag,
	},
	RedFlags: []string{
		"Incluir la fecha de nacimiento, es innecesario y puede dar lugar a sesgos.",
		"Incluir detalles irrelevantes ('fluff') en la sección de Mercado Libre, lo que hace que el CV sea menos conciso y directo.",
	},
}

var goldB = domain.GradeResult{
	Grade: domain.GradeB,
	YellowFlags: []string{
		"La sección de habilidades es extensa y poco específica. Te recomiendo que la ajustes a la descripción del puesto al que te postulás, incluyendo las habilidades más relevantes y omitiendo las menos importantes o redundantes.",
		"Se menciona 'AWS' dos veces en la sección de habilidades, lo cual puede percibirse como un descuido o falta de organización.",
		"Mencionás que tus estudios universitarios están incompletos. Si bien no es un impedimento, te recomiendo que no lo hagas.",
		"El proyecto 'MercadoCat' podría detallarse un poco más. Describí las tecnologías que usaste, el impacto que tuvo y cualquier otro detalle relevante que demuestre tus habilidades y experiencia.",
	},
	RedFlags: []string{
		"En la sección 'Acerca de', podrías mencionar tus logros y cómo estos se alinean con las necesidades de la empresa a la que te postulás. Palabras como 'proactive', 'smart' y 'opportunities to grow' no demuestran nada, tenés que demostrar que sos el candidato que la empresa quiere.",
		"Las experiencias listadas en el CV no especifican logros concretos, métricas o resultados obtenidos en los proyectos. Sería ideal incluir métricas que reflejen impacto, como 'mejoré el tiempo de carga en un X%' o 'aumenté la eficiencia del backend en un Y%.'",
		"Inconsistencia en el uso del inglés: En la sección de 'EXPERIENCE' hay errores menores de inglés, como 'Particpated' en lugar de 'Participated'. Esto puede afectar la impresión profesional y dar una apariencia de falta de atención al detalle.",
	},
}

var goldC = domain.GradeResult{
	Grade: domain.GradeC,
	RedFlags: []string{
		templateFlag,
		"Posible uso de Word u otro procesador anticuado: Si el CV fue hecho en Word o con un formato que no luce profesional, puede ser un motivo de rechazo en algunos casos.",
		"Uso de imágenes: Las empresas en Estados Unidos consideran inapropiado incluir imágenes en el CV, ya que esto no es estándar y puede generar una percepción negativa.",
		"Representación de habilidades en porcentajes: Mostrar habilidades con porcentajes es desaconsejable, ya que no comunica de manera clara el nivel real de competencia y puede dar lugar a malinterpretaciones. Se prefiere un formato que indique los conocimientos y experiencia de forma descriptiva.",
	},
	YellowFlags: []string{},
}

// encryptedGold lists the optional subset in its fixed presentation order.
// Each entry's file lives at <assets>/encrypted/<name>.pdf.enc.
var encryptedGold = []struct {
	name string
	gold domain.GradeResult
}{
	{
		name: "tomassi",
		gold: domain.GradeResult{
			Grade: domain.GradeB,
			YellowFlags: []string{
				"En cada experiencia laboral, cuantificá tus logros con métricas y números para demostrar el impacto de tu trabajo. Por ejemplo, en 'Senior Web Developer', podrías mencionar cuántos usuarios usaron los sitios web que desarrollaste o cómo mejoraste la performance de la aplicación.",
				"En 'Software Developer PHP', podrías mencionar el éxito de los 65 proyectos web que lideraste. ¿Aumentaron las ventas? ¿Mejoró la satisfacción del cliente? Incluí datos concretos que demuestren tu impacto.",
			},
			RedFlags: []string{
				"No menciones 'over 10 years of experience'. En lugar de eso, cuantificá tus logros con métricas y resultados concretos.",
				"Quitá la sección 'LANGUAGE'. Si la empresa requiere un nivel de inglés específico, lo va a mencionar en la descripción del trabajo. Si no lo menciona, asumí que con que puedas comunicarte está bien. En la entrevista podés mencionar tu nivel de inglés si te sentís cómodo.",
				"No incluyas un resumen genérico como el que tenés en 'ABOUT ME'. Tenés que adaptar esta sección a cada empresa a la que te postules, respondiendo a la pregunta de por qué deberían contratarte.",
				"Quitá la sección 'SKILLS'. En lugar de eso, incorporá tus habilidades dentro de la descripción de tus experiencias laborales, con ejemplos concretos de cómo las usaste y los resultados que obtuviste. Mencionar las tecnologías sin contexto no aporta valor a tu CV.",
				"Tus habilidades y experiencias no son muy consistentes, sos Back End Developer, Full Stack o Front End? Mencionás SEO, graphical interfaces y el puesto de trabajo dice Back End, tratá de adaptar el CV al puesto que estás buscando.",
			},
		},
	},
	{
		name: "gimenez",
		gold: domain.GradeResult{
			Grade: domain.GradeC,
			YellowFlags: []string{
				"Las habilidades están listadas sin mayor detalle. En lugar de simplemente enumerarlas, describí cómo las has aplicado en proyectos concretos y cuantificá los resultados siempre que sea posible.",
				"No hay información sobre proyectos personales, lo que podría ser una buena oportunidad para demostrar tus habilidades y pasión por la tecnología. Si tenés proyectos, incluilos.",
				"La experiencia laboral no está descrita con suficiente detalle. Incluí más información sobre tus responsabilidades y logros cuantificables.",
			},
			RedFlags: []string{
				"El CV está en español, lo cual es un rechazo inmediato en el mercado estadounidense.",
				templateFlagTypst,
				"El CV incluye una foto, lo cual no se recomienda para empresas en Estados Unidos.",
				"La sección 'Acerca de' no existe. Es fundamental agregar una sección que explique por qué la empresa debería contratarte, adaptándola a cada puesto al que te postules.",
				"Las habilidades como 'comunicativo' u 'organizado' no sirven en un CV.",
				"Tus habilidades y experiencias no son muy consistentes, sos Back End Developer, Full Stack o Front End? Tratá de adaptar el CV al puesto que estás buscando.",
			},
		},
	},
	{
		name: "villalobos",
		gold: domain.GradeResult{
			Grade: domain.GradeC,
			YellowFlags: []string{
				"Listar skills a mansalva no es bueno, puede ser considerado 'spray & pray'",
				"No hay información sobre proyectos personales, lo que podría ser una buena oportunidad para demostrar tus habilidades y pasión por la tecnología. Si tenés proyectos, incluilos.",
			},
			RedFlags: []string{
				"El CV está en español, lo cual es un rechazo inmediato en el mercado estadounidense.",
				templateFlagTypst,
				"No cuantificás tus logros. En lugar de decir 'mejorar y extender el sistema', podrías decir 'Mejoré la eficiencia del sistema en un 15% al reducir el tiempo de carga en un 20%'. Siempre que puedas, incluí números y datos concretos para respaldar tus afirmaciones.",
				"El currículum tiene dos páginas. Para empresas en Estados Unidos, lo ideal es que el CV tenga una sola página, a menos que tengas una trayectoria muy extensa y destacada. Tenés que sintetizar la información de forma concisa y relevante.",
				"Hay errores de tipeo o gramaticales ('consoulting', 'él envió'). Antes de enviar tu CV, revisalo cuidadosamente o usá un corrector gramatical como Grammarly. Errores como estos dan una mala impresión y pueden ser motivo de rechazo automático en muchos casos.",
			},
		},
	},
	{
		name: "boga",
		gold: domain.GradeResult{
			Grade: domain.GradeA,
			YellowFlags: []string{
				"Tu CV usa varias fuentes distintas, serif y sans-serif, procura usar una sola.",
				"En la sección de experiencia, podrías cuantificar tus logros con mayor precisión. Por ejemplo, en lugar de decir 'contribuyó al crecimiento significativo de la empresa', podrías decir 'aumenté la base de clientes en un X%' o 'implementé una nueva estrategia que generó un aumento del Y% en las ventas'.",
			},
			RedFlags: []string{},
		},
	},
	{
		name: "oviedo",
		gold: domain.GradeResult{
			Grade: domain.GradeB,
			YellowFlags: []string{
				"En la sección de idiomas, la descripción de tu nivel de inglés es redundante. Podés simplificarlo a 'Upper-intermediate English' y mencionar que te comunicás con fluidez en entornos profesionales y técnicos.",
			},
			RedFlags: []string{
				"Incluir 'Product managment fundamentals' como certificación es poco usual, podrías omitirlo o detallarlo más en la sección de experiencia si es relevante para el puesto al que te postulás.",
				templateFlagTypst,
				"La lista de certificaciones es extensa y poco específica. Enfocate en las más relevantes para el puesto al que te postulás y organizalas de manera más visual, por ejemplo, agrupándolas por categorías o áreas de especialización.",
				"Hay errores de tipeo o gramaticales ('deliveri', 'Certificacions'). Antes de enviar tu CV, revisalo cuidadosamente o usá un corrector gramatical como Grammarly. Errores como estos dan una mala impresión y pueden ser motivo de rechazo automático en muchos casos.",
			},
		},
	},
	{
		name: "porracin",
		gold: domain.GradeResult{
			Grade: domain.GradeB,
			YellowFlags: []string{
				"La sección 'Logros' no está cuantificada. En lugar de simplemente mencionar los logros, cuantificá el impacto de los mismos con datos y números para que sean más convincentes. Por ejemplo, en lugar de decir 'Ahorro drástico en los tiempos de desarrollo', podrías decir 'Reducción del 30% en los tiempos de desarrollo'.",
				"Si bien mencionás responsabilidades en cada puesto, es importante destacar los logros y resultados obtenidos en cada uno. Incluí ejemplos cuantificables de cómo tus acciones generaron un impacto positivo en la empresa.",
			},
			RedFlags: []string{
				templateFlagTypst,
			},
		},
	},
	{
		name: "montrull",
		gold: domain.GradeResult{
			Grade: domain.GradeC,
			YellowFlags: []string{
				"Si bien la experiencia en logística puede ser relevante para algunos puestos, asegurate de destacar las habilidades transferibles que adquiriste en esos roles y cómo se aplican al puesto al que te postulás.",
			},
			RedFlags: []string{
				"El currículum está escrito en español, lo que no es recomendable para empresas en Estados Unidos. Siempre escribí tu currículum en inglés.",
				"Incluir la fecha de nacimiento en el currículum no es relevante para las empresas en Estados Unidos y puede ser motivo de discriminación. Te recomiendo eliminarla.",
				"El diseño del currículum es poco profesional y no sigue las convenciones de un currículum moderno para empresas en Estados Unidos. Te recomiendo usar un template como el de [silver.dev](" + prompt.TypstTemplateURL + ").",
				"La sección 'Sobre mí' es genérica y no destaca tus logros o habilidades de forma convincente. Tenés que responder a la pregunta de '¿Por qué esta empresa debería contratarme?' de manera implícita o explícita.",
				"Las descripciones de tus experiencias laborales son demasiado breves y no proporcionan suficiente detalle sobre tus responsabilidades y logros. Incluí ejemplos concretos y cuantificables siempre que sea posible. Demostrá tus logros con métricas y resultados. En lugar de simplemente listar tareas, describí el impacto que tuviste en la empresa.",
				"La sección de habilidades es demasiado genérica. En lugar de listar habilidades sueltas, enfocate en las habilidades más relevantes para el puesto al que te postulás y cómo las has aplicado en tus experiencias laborales. Agrupalas por categorías relevantes para mayor claridad.",
				"Las barras de progreso para los idiomas no son profesionales y no aportan información precisa sobre tu nivel de dominio. Te recomiendo que las elimines y describas tu nivel de dominio de cada idioma de forma clara y concisa (ej. nativo, fluido, intermedio, básico).",
			},
		},
	},
	{
		name: "vega",
		gold: domain.GradeResult{
			Grade: domain.GradeB,
			YellowFlags: []string{
				"collaborate collaborate' está repetido, revisá la ortografía y gramática del CV.",
			},
			RedFlags: []string{
				"Tu CV no tiene nombre.",
				"Las descripciones de tus experiencias laborales son demasiado breves y no proporcionan suficiente detalle sobre tus responsabilidades y logros. Incluí ejemplos concretos y cuantificables siempre que sea posible. Demostrá tus logros con métricas y resultados. En lugar de simplemente listar tareas, describí el impacto que tuviste en la empresa.",
			},
		},
	},
}
